package analyses

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/speechmastery/coach-api/api/types"
	"github.com/speechmastery/coach-api/internal/services/analyses"
)

// @Summary Delete analysis for a recording
// @Description Removes the stored analysis result for a recording
// @Tags analyses
// @Produce json
// @Param recordingID path string true "Recording ID"
// @Success 200 {object} types.BaseResponse "Analysis deleted"
// @Failure 404 {object} types.ErrorResponse "Analysis not found"
// @Failure 500 {object} types.ErrorResponse "Delete failed"
// @Router /api/v1/analyses/{recordingID} [delete]
func DeleteAnalysis(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordingID, ok := types.RequireParam(c, "recordingID")
		if !ok {
			return
		}

		if err := deps.AnalysisService.DeleteByRecordingID(c.Request.Context(), recordingID); err != nil {
			if errors.Is(err, analyses.ErrAnalysisNotFound) {
				types.SendNotFound(c, "No analysis found for recording "+recordingID)
				return
			}
			log.Printf("[ERROR] Failed to delete analysis for recording %s: %v", recordingID, err)
			types.SendInternalError(c, "Failed to delete analysis")
			return
		}

		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Analysis deleted for recording " + recordingID,
		})
	}
}
