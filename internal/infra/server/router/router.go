// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/barber-manager/backend/internal/integration/entrypoint/controller"
	"github.com/barber-manager/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	catalogController     *controller.CatalogController
	appointmentController *controller.AppointmentController
	expenseController     *controller.ExpenseController
	barberController      *controller.BarberController
	clientController      *controller.ClientController
	ledgerController      *controller.LedgerController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	catalogController *controller.CatalogController,
	appointmentController *controller.AppointmentController,
	expenseController *controller.ExpenseController,
	barberController *controller.BarberController,
	clientController *controller.ClientController,
	ledgerController *controller.LedgerController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		catalogController:     catalogController,
		appointmentController: appointmentController,
		expenseController:     expenseController,
		barberController:      barberController,
		clientController:      clientController,
		ledgerController:      ledgerController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
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

	// Setup routes
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
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Service catalog routes (require authentication)
		if r.catalogController != nil && r.authMiddleware != nil {
			services := v1.Group("/services")
			services.Use(r.authMiddleware.Authenticate())
			{
				services.GET("", r.catalogController.List)
				services.POST("", r.catalogController.Create)
				services.PUT("/:id", r.catalogController.Update)
				services.DELETE("/:id", r.catalogController.Delete)
			}
		}

		// Appointment routes (require authentication)
		if r.appointmentController != nil && r.authMiddleware != nil {
			appointments := v1.Group("/appointments")
			appointments.Use(r.authMiddleware.Authenticate())
			{
				appointments.GET("", r.appointmentController.List)
				appointments.POST("", r.appointmentController.Book)
				appointments.PUT("/:id", r.appointmentController.Update)
				appointments.POST("/:id/complete", r.appointmentController.Complete)
				appointments.DELETE("/:id", r.appointmentController.Delete)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Barber registry routes (require authentication)
		if r.barberController != nil && r.authMiddleware != nil {
			barbers := v1.Group("/barbers")
			barbers.Use(r.authMiddleware.Authenticate())
			{
				barbers.GET("", r.barberController.List)
				barbers.POST("", r.barberController.Create)
				barbers.PUT("/:id", r.barberController.Update)
				barbers.DELETE("/:id", r.barberController.Delete)
			}
		}

		// Client registry routes (require authentication)
		if r.clientController != nil && r.authMiddleware != nil {
			clients := v1.Group("/clients")
			clients.Use(r.authMiddleware.Authenticate())
			{
				clients.GET("", r.clientController.List)
				clients.POST("", r.clientController.Create)
				clients.PUT("/:id", r.clientController.Update)
				clients.DELETE("/:id", r.clientController.Delete)
			}
		}

		// Cash ledger routes (require authentication)
		if r.ledgerController != nil && r.authMiddleware != nil {
			ledger := v1.Group("/ledger")
			ledger.Use(r.authMiddleware.Authenticate())
			{
				ledger.GET("", r.ledgerController.List)
				ledger.GET("/options", r.ledgerController.FilterOptions)
				ledger.GET("/export", r.ledgerController.Export)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
