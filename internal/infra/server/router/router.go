// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budget-planner/backend/internal/integration/entrypoint/controller"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	monthController     *controller.MonthController
	instanceController  *controller.InstanceController
	referenceController *controller.ReferenceController
	generateRateLimiter *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	monthController *controller.MonthController,
	instanceController *controller.InstanceController,
	referenceController *controller.ReferenceController,
	generateRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		monthController:     monthController,
		instanceController:  instanceController,
		referenceController: referenceController,
		generateRateLimiter: generateRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Month routes
		if r.monthController != nil {
			months := v1.Group("/months")
			{
				months.GET("/:month", r.monthController.GetView)
				months.GET("/:month/instances", r.monthController.ListInstances)
				months.GET("/:month/summary", r.monthController.GetSummary)
				months.GET("/:month/cash-flow", r.monthController.GetCashFlow)

				if r.generateRateLimiter != nil {
					months.POST("/:month/generate", r.generateRateLimiter.Middleware(), r.monthController.Generate)
					months.POST("/:month/settle", r.generateRateLimiter.Middleware(), r.monthController.Settle)
				} else {
					months.POST("/:month/generate", r.monthController.Generate)
					months.POST("/:month/settle", r.monthController.Settle)
				}
			}
		}

		// Instance routes
		if r.instanceController != nil {
			instances := v1.Group("/instances")
			{
				instances.POST("", r.instanceController.Create)
				instances.POST("/:id/pay", r.instanceController.Pay)
				instances.POST("/:id/defer", r.instanceController.Defer)
				instances.POST("/:id/reopen", r.instanceController.Reopen)
			}
		}

		// Reference data routes
		if r.referenceController != nil {
			v1.GET("/sections", r.referenceController.ListSections)
			v1.GET("/cards", r.referenceController.ListCards)
			v1.GET("/settings", r.referenceController.GetSettings)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
