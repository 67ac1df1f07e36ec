package reports

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/speechmastery/coach-api/api/types"
	"github.com/speechmastery/coach-api/internal/services/reports"
)

// @Summary Get a daily report
// @Description Retrieves a previously generated report for a user and calendar date
// @Tags reports
// @Produce json
// @Param userID path string true "User ID"
// @Param date path string true "Report date (YYYY-MM-DD)"
// @Success 200 {object} models.Report "Daily report"
// @Failure 400 {object} types.ErrorResponse "Invalid parameters"
// @Failure 404 {object} types.ErrorResponse "Report not found"
// @Failure 500 {object} types.ErrorResponse "Lookup failed"
// @Router /api/v1/reports/{userID}/{date} [get]
func GetReport(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.RequireParam(c, "userID")
		if !ok {
			return
		}
		dateParam, ok := types.RequireParam(c, "date")
		if !ok {
			return
		}

		date, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			types.SendBadRequest(c, "date must be YYYY-MM-DD")
			return
		}

		report, err := deps.ReportService.GetReport(c.Request.Context(), userID, date)
		if err != nil {
			if errors.Is(err, reports.ErrReportNotFound) {
				types.SendNotFound(c, "No report found for user "+userID+" on "+dateParam)
				return
			}
			log.Printf("[ERROR] Failed to load report for user %s on %s: %v", userID, dateParam, err)
			types.SendInternalError(c, "Failed to load report")
			return
		}

		types.SendSuccess(c, report)
	}
}
