package reports

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/speechmastery/coach-api/api/types"
	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/internal/services/jobs"
	"github.com/speechmastery/coach-api/internal/services/reports"
)

// PostReportRequest is the request body for generating a daily report
type PostReportRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Async  bool   `json:"async,omitempty"`
}

// @Summary Generate a daily report
// @Description Aggregates a user's analyses for a calendar date into a daily report, replacing any previous report for that date. With async=true the work is queued and a job ID is returned instead.
// @Tags reports
// @Accept json
// @Produce json
// @Param request body reports.PostReportRequest true "User and report date"
// @Success 200 {object} models.Report "Report generated"
// @Success 202 {object} types.QueuedResponse "Report generation queued"
// @Failure 400 {object} types.ErrorResponse "Invalid request"
// @Failure 404 {object} types.ErrorResponse "No analyses for this date"
// @Failure 500 {object} types.ErrorResponse "Report generation failed"
// @Router /api/v1/reports [post]
func PostReport(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PostReportRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			types.SendBadRequest(c, "date must be YYYY-MM-DD")
			return
		}

		if req.Async {
			enqueueReport(c, deps, req.UserID, req.Date)
			return
		}

		report, err := deps.ReportService.GenerateReport(c.Request.Context(), req.UserID, date)
		if err != nil {
			switch {
			case errors.Is(err, reports.ErrNoData):
				types.SendNotFound(c, "No analyses found for user "+req.UserID+" on "+req.Date)
			case errors.Is(err, reports.ErrInvalidUserID):
				types.SendBadRequest(c, err.Error())
			default:
				log.Printf("[ERROR] Report generation failed for user %s on %s: %v",
					req.UserID, req.Date, err)
				types.SendInternalError(c, "Report generation failed")
			}
			return
		}

		types.SendSuccess(c, report)
	}
}

// enqueueReport queues report generation as a background job keyed by
// user and date, so repeated requests reuse the active job
func enqueueReport(c *gin.Context, deps *types.Dependencies, userID, date string) {
	reportKey := userID + ":" + date
	payload := models.JobPayload{
		jobs.PayloadUserID:     userID,
		jobs.PayloadReportDate: date,
		jobs.PayloadReportKey:  reportKey,
	}

	job, err := deps.JobService.EnqueueUniqueJob(c.Request.Context(),
		models.JobTypeReportGeneration, payload, jobs.PayloadReportKey)
	if err != nil {
		log.Printf("[ERROR] Failed to enqueue report for user %s on %s: %v", userID, date, err)
		types.SendInternalError(c, "Failed to queue report generation")
		return
	}

	types.SendAccepted(c, types.QueuedResponse{
		BaseResponse: types.BaseResponse{
			Status:  types.StatusQueued,
			Message: "Report generation queued for " + userID + " on " + date,
		},
		JobID: job.ID,
	})
}
