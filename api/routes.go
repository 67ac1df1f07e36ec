package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/speechmastery/coach-api/api/analyses"
	"github.com/speechmastery/coach-api/api/health"
	"github.com/speechmastery/coach-api/api/jobs"
	"github.com/speechmastery/coach-api/api/reports"
	"github.com/speechmastery/coach-api/api/types"
	"github.com/speechmastery/coach-api/api/version"
	_ "github.com/speechmastery/coach-api/docs/swagger"
	"github.com/speechmastery/coach-api/pkg/config"
)

// Used when the config names neither the endpoint nor a default bucket
const fallbackRateLimit = 120

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rl config.RateLimitConfig, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	// API v1 routes, each group throttled per its rate_limiting.endpoints
	// bucket
	v1 := engine.Group("/api/v1")

	analysesGroup := v1.Group("/analyses")
	applyRateLimit(analysesGroup, rl, "analyses", rateLimiters, cleanupStop, cleanupInitialized)
	analyses.RegisterRoutes(analysesGroup, deps)

	reportsGroup := v1.Group("/reports")
	applyRateLimit(reportsGroup, rl, "reports", rateLimiters, cleanupStop, cleanupInitialized)
	reports.RegisterRoutes(reportsGroup, deps)

	jobsGroup := v1.Group("/jobs")
	applyRateLimit(jobsGroup, rl, "jobs", rateLimiters, cleanupStop, cleanupInitialized)
	jobs.RegisterRoutes(jobsGroup, deps)

	return nil
}

// applyRateLimit attaches the per-client limiter for the endpoint's
// configured bucket, or does nothing when rate limiting is disabled
func applyRateLimit(group *gin.RouterGroup, rl config.RateLimitConfig, endpoint string, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) {
	if !rl.Enabled {
		return
	}
	rps, burst := endpointLimit(rl, endpoint)
	group.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
}

// endpointLimit resolves the requests-per-second for an endpoint bucket,
// falling back to the "default" bucket and then a built-in limit. Burst is
// twice the sustained rate.
func endpointLimit(rl config.RateLimitConfig, endpoint string) (rps, burst int) {
	rps = rl.Endpoints[endpoint]
	if rps <= 0 {
		rps = rl.Endpoints["default"]
	}
	if rps <= 0 {
		rps = fallbackRateLimit
	}
	return rps, rps * 2
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
