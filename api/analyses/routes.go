package analyses

import (
	"github.com/gin-gonic/gin"

	"github.com/speechmastery/coach-api/api/types"
)

// RegisterRoutes registers analysis routes on the given router group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("", PostAnalysis(deps))
	group.GET("", ListAnalyses(deps))
	group.GET("/:recordingID", GetAnalysis(deps))
	group.DELETE("/:recordingID", DeleteAnalysis(deps))
}
