package reports

import (
	"github.com/gin-gonic/gin"

	"github.com/speechmastery/coach-api/api/types"
)

// RegisterRoutes registers report routes on the given router group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("", PostReport(deps))
	group.GET("/:userID/:date", GetReport(deps))
}
