package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Service version
// @Description Returns the service name and version
// @Tags version
// @Produce json
// @Success 200 {object} map[string]string "Version information"
// @Router /version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Speech Mastery API",
			"version":     "1.0.0",
			"description": "API for analyzing speaking effectiveness and daily progress reports",
			"status":      "running",
		})
	}
}
