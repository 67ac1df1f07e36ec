package analyses

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/speechmastery/coach-api/api/types"
	"github.com/speechmastery/coach-api/internal/services/analyses"
)

// @Summary Get analysis for a recording
// @Description Retrieves the stored analysis result for a recording
// @Tags analyses
// @Produce json
// @Param recordingID path string true "Recording ID"
// @Success 200 {object} models.AnalysisResult "Analysis result"
// @Failure 404 {object} types.ErrorResponse "Analysis not found"
// @Failure 500 {object} types.ErrorResponse "Lookup failed"
// @Router /api/v1/analyses/{recordingID} [get]
func GetAnalysis(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordingID, ok := types.RequireParam(c, "recordingID")
		if !ok {
			return
		}

		result, err := deps.AnalysisService.GetByRecordingID(c.Request.Context(), recordingID)
		if err != nil {
			if errors.Is(err, analyses.ErrAnalysisNotFound) {
				types.SendNotFound(c, "No analysis found for recording "+recordingID)
				return
			}
			log.Printf("[ERROR] Failed to load analysis for recording %s: %v", recordingID, err)
			types.SendInternalError(c, "Failed to load analysis")
			return
		}

		types.SendSuccess(c, result)
	}
}
