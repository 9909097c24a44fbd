// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/barber-manager/backend/config"
	"github.com/barber-manager/backend/internal/application/usecase/appointment"
	"github.com/barber-manager/backend/internal/application/usecase/auth"
	"github.com/barber-manager/backend/internal/application/usecase/catalog"
	"github.com/barber-manager/backend/internal/application/usecase/expense"
	"github.com/barber-manager/backend/internal/application/usecase/ledger"
	"github.com/barber-manager/backend/internal/application/usecase/registry"
	"github.com/barber-manager/backend/internal/application/usecase/report"
	"github.com/barber-manager/backend/internal/infra/server/router"
	"github.com/barber-manager/backend/internal/integration/adapters"
	"github.com/barber-manager/backend/internal/integration/entrypoint/controller"
	"github.com/barber-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/barber-manager/backend/internal/integration/persistence"
	"github.com/barber-manager/backend/internal/integration/persistence/memory"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	serviceRepo := memory.NewServiceStore()
	appointmentRepo := memory.NewAppointmentStore()
	expenseRepo := memory.NewExpenseStore()
	barberRepo := memory.NewBarberStore()
	clientRepo := memory.NewClientStore()

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create service catalog use cases
	createServiceUseCase := catalog.NewCreateServiceUseCase(serviceRepo)
	updateServiceUseCase := catalog.NewUpdateServiceUseCase(serviceRepo)
	deleteServiceUseCase := catalog.NewDeleteServiceUseCase(serviceRepo)
	listServicesUseCase := catalog.NewListServicesUseCase(serviceRepo)

	// Create appointment use cases
	bookAppointmentUseCase := appointment.NewBookAppointmentUseCase(appointmentRepo, serviceRepo)
	updateAppointmentUseCase := appointment.NewUpdateAppointmentUseCase(appointmentRepo, serviceRepo)
	completeAppointmentUseCase := appointment.NewCompleteAppointmentUseCase(appointmentRepo)
	deleteAppointmentUseCase := appointment.NewDeleteAppointmentUseCase(appointmentRepo)
	listAppointmentsUseCase := appointment.NewListAppointmentsUseCase(appointmentRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)

	// Create registry use cases
	createBarberUseCase := registry.NewCreateBarberUseCase(barberRepo)
	updateBarberUseCase := registry.NewUpdateBarberUseCase(barberRepo)
	deleteBarberUseCase := registry.NewDeleteBarberUseCase(barberRepo)
	listBarbersUseCase := registry.NewListBarbersUseCase(barberRepo)
	createClientUseCase := registry.NewCreateClientUseCase(clientRepo)
	updateClientUseCase := registry.NewUpdateClientUseCase(clientRepo)
	deleteClientUseCase := registry.NewDeleteClientUseCase(clientRepo)
	listClientsUseCase := registry.NewListClientsUseCase(clientRepo)

	// Create ledger and export use cases
	projectLedgerUseCase := ledger.NewProjectLedgerUseCase(appointmentRepo, expenseRepo)
	filterOptionsUseCase := ledger.NewListFilterOptionsUseCase(appointmentRepo)
	exportCSVUseCase := report.NewExportCSVUseCase(projectLedgerUseCase)
	exportPDFUseCase := report.NewExportPDFUseCase(projectLedgerUseCase)
	exportXLSXUseCase := report.NewExportXLSXUseCase(projectLedgerUseCase)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	catalogController := controller.NewCatalogController(
		createServiceUseCase,
		updateServiceUseCase,
		deleteServiceUseCase,
		listServicesUseCase,
	)

	appointmentController := controller.NewAppointmentController(
		bookAppointmentUseCase,
		updateAppointmentUseCase,
		completeAppointmentUseCase,
		deleteAppointmentUseCase,
		listAppointmentsUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		listExpensesUseCase,
	)

	barberController := controller.NewBarberController(
		createBarberUseCase,
		updateBarberUseCase,
		deleteBarberUseCase,
		listBarbersUseCase,
	)

	clientController := controller.NewClientController(
		createClientUseCase,
		updateClientUseCase,
		deleteClientUseCase,
		listClientsUseCase,
	)

	ledgerController := controller.NewLedgerController(
		projectLedgerUseCase,
		filterOptionsUseCase,
		exportCSVUseCase,
		exportPDFUseCase,
		exportXLSXUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		catalogController,
		appointmentController,
		expenseController,
		barberController,
		clientController,
		ledgerController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
