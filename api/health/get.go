package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/speechmastery/coach-api/api/types"
)

// @Summary Health check
// @Description Reports service liveness and database status
// @Tags health
// @Produce json
// @Success 200 {object} types.HealthResponse "Service is healthy"
// @Router /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		if deps != nil && deps.DB != nil {
			response["database"] = getDatabaseStatus(deps)
		} else {
			response["database"] = gin.H{"status": "not configured"}
		}

		if deps != nil && deps.Lexicons != nil {
			response["lexicon"] = gin.H{"version": deps.Lexicons.Active().Version}
		}

		c.JSON(http.StatusOK, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}
