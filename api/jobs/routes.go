package jobs

import (
	"github.com/gin-gonic/gin"

	"github.com/speechmastery/coach-api/api/types"
)

// RegisterRoutes registers job routes on the given router group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("/:id", GetJob(deps))
}
