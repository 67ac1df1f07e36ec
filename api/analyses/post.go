package analyses

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/speechmastery/coach-api/api/types"
	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/internal/services/analyses"
	"github.com/speechmastery/coach-api/internal/services/analyzer"
	"github.com/speechmastery/coach-api/internal/services/jobs"
	apperrors "github.com/speechmastery/coach-api/pkg/errors"
)

// PostAnalysisRequest is the request body for analyzing a recording
type PostAnalysisRequest struct {
	RecordingID string                 `json:"recording_id" binding:"required"`
	UserID      string                 `json:"user_id" binding:"required"`
	Transcript  string                 `json:"transcript" binding:"required"`
	Audio       analyzer.AudioMetadata `json:"audio_metadata"`
	RecordedAt  string                 `json:"recorded_at,omitempty"`
	Async       bool                   `json:"async,omitempty"`
}

// @Summary Analyze a recording
// @Description Runs speaking-effectiveness analysis for one recording and persists the result. With async=true the work is queued and a job ID is returned instead.
// @Tags analyses
// @Accept json
// @Produce json
// @Param request body analyses.PostAnalysisRequest true "Recording transcript and audio metadata"
// @Success 201 {object} models.AnalysisResult "Analysis completed"
// @Success 202 {object} types.QueuedResponse "Analysis queued"
// @Failure 400 {object} types.ErrorResponse "Invalid request"
// @Failure 409 {object} types.ErrorResponse "Recording already analyzed"
// @Failure 500 {object} types.ErrorResponse "Analysis failed"
// @Router /api/v1/analyses [post]
func PostAnalysis(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PostAnalysisRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		recordedAt, ok := parseRecordedAt(c, req.RecordedAt)
		if !ok {
			return
		}

		if req.Async {
			enqueueAnalysis(c, deps, req)
			return
		}

		result, err := deps.AnalysisService.AnalyzeRecording(c.Request.Context(), analyses.AnalyzeRequest{
			RecordingID: req.RecordingID,
			UserID:      req.UserID,
			Transcript:  req.Transcript,
			Audio:       req.Audio,
			RecordedAt:  recordedAt,
		})
		if err != nil {
			respondAnalyzeError(c, req.RecordingID, err)
			return
		}

		types.SendCreated(c, result)
	}
}

// enqueueAnalysis queues the analysis as a background job, reusing any
// still-active job for the same recording
func enqueueAnalysis(c *gin.Context, deps *types.Dependencies, req PostAnalysisRequest) {
	payload := models.JobPayload{
		jobs.PayloadRecordingID: req.RecordingID,
		jobs.PayloadUserID:      req.UserID,
		jobs.PayloadTranscript:  req.Transcript,
		jobs.PayloadAudio:       req.Audio,
	}
	if req.RecordedAt != "" {
		payload[jobs.PayloadRecordedAt] = req.RecordedAt
	}

	job, err := deps.JobService.EnqueueUniqueJob(c.Request.Context(),
		models.JobTypeTranscriptAnalysis, payload, jobs.PayloadRecordingID)
	if err != nil {
		log.Printf("[ERROR] Failed to enqueue analysis for recording %s: %v", req.RecordingID, err)
		types.SendInternalError(c, "Failed to queue analysis")
		return
	}

	types.SendAccepted(c, types.QueuedResponse{
		BaseResponse: types.BaseResponse{
			Status:  types.StatusQueued,
			Message: "Analysis queued for recording " + req.RecordingID,
		},
		JobID: job.ID,
	})
}

// parseRecordedAt parses the optional RFC3339 recording timestamp
func parseRecordedAt(c *gin.Context, value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		types.SendBadRequest(c, "recorded_at must be an RFC3339 timestamp")
		return time.Time{}, false
	}
	return parsed, true
}

func respondAnalyzeError(c *gin.Context, recordingID string, err error) {
	switch {
	case errors.Is(err, analyses.ErrAlreadyAnalyzed):
		types.SendConflict(c, "Recording "+recordingID+" has already been analyzed")
	case errors.Is(err, analyses.ErrInvalidRecordingID), errors.Is(err, analyses.ErrInvalidUserID):
		types.SendBadRequest(c, err.Error())
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			types.SendAppError(c, err)
			return
		}
		log.Printf("[ERROR] Analysis failed for recording %s: %v", recordingID, err)
		types.SendInternalError(c, "Analysis failed")
	}
}
