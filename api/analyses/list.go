package analyses

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/speechmastery/coach-api/api/types"
)

// @Summary List analyses for a day
// @Description Lists a user's analyses recorded on a calendar date, ordered by recording time
// @Tags analyses
// @Produce json
// @Param user_id query string true "User ID"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Param tz query string false "IANA timezone for the day boundary (default UTC)"
// @Success 200 {object} map[string]interface{} "Analyses for the day"
// @Failure 400 {object} types.ErrorResponse "Invalid parameters"
// @Failure 500 {object} types.ErrorResponse "Lookup failed"
// @Router /api/v1/analyses [get]
func ListAnalyses(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			types.SendBadRequest(c, "user_id query parameter is required")
			return
		}

		date, err := time.Parse("2006-01-02", c.Query("date"))
		if err != nil {
			types.SendBadRequest(c, "date query parameter must be YYYY-MM-DD")
			return
		}

		loc := time.UTC
		if tz := c.Query("tz"); tz != "" {
			loc, err = time.LoadLocation(tz)
			if err != nil {
				types.SendBadRequest(c, "Unknown timezone: "+tz)
				return
			}
		}

		results, err := deps.AnalysisService.ListForDay(c.Request.Context(), userID, date, loc)
		if err != nil {
			log.Printf("[ERROR] Failed to list analyses for user %s on %s: %v",
				userID, date.Format("2006-01-02"), err)
			types.SendInternalError(c, "Failed to list analyses")
			return
		}

		types.SendSuccess(c, gin.H{
			"user_id":  userID,
			"date":     date.Format("2006-01-02"),
			"count":    len(results),
			"analyses": results,
		})
	}
}
