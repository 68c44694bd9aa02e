package routes

import (
	"payroll-backend/internal/api/handlers"
	"payroll-backend/internal/api/middleware"
	"payroll-backend/internal/config"
	"payroll-backend/internal/events"
	"payroll-backend/internal/notifications"
	"payroll-backend/internal/repository"
	"payroll-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services, event subscribers and handlers,
// and registers all routes. All wiring is explicit constructor calls done
// once here; nothing resolves collaborators at runtime.
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)
	workscheduleRepo := repository.NewWorkscheduleRepository(db)
	detailRepo := repository.NewWorkscheduleDetailRepository(db)
	timeDetailRepo := repository.NewWorkscheduleTimeDetailRepository(db)

	// Initialize event dispatcher and subscribers
	dispatcher := events.NewDispatcher()

	var mailer notifications.Mailer = notifications.NoopMailer{}
	if cfg.SendinblueAPIKey != "" {
		mailer = notifications.NewSendinblueMailer(cfg.SendinblueAPIKey, cfg.ReminderFromName, cfg.ReminderFromEmail)
	}
	reminder := notifications.NewReminderNotifier(userRepo, timeDetailRepo, mailer, cfg.ReminderTemplateID)
	reminder.Register(dispatcher)

	// Initialize services
	companyService := service.NewCompanyService(companyRepo, validate)
	userService := service.NewUserService(userRepo, companyRepo, validate)
	workscheduleService := service.NewWorkscheduleService(workscheduleRepo, companyRepo, validate)
	detailService := service.NewWorkscheduleDetailService(detailRepo, timeDetailRepo, workscheduleRepo, userRepo, validate, dispatcher)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	companyHandler := handlers.NewCompanyHandler(companyService)
	userHandler := handlers.NewUserHandler(userService)
	workscheduleHandler := handlers.NewWorkscheduleHandler(workscheduleService)
	detailHandler := handlers.NewWorkscheduleDetailHandler(detailService)

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		companies := v1.Group("/companies")
		{
			companies.POST("", companyHandler.CreateCompany)
			companies.GET("", companyHandler.ListCompanies)
			companies.GET("/:id", companyHandler.GetCompany)
			companies.PATCH("/:id", companyHandler.UpdateCompany)
			companies.DELETE("/:id", companyHandler.DeleteCompany)
			companies.GET("/:id/users", userHandler.ListUsersByCompany)
			companies.GET("/:id/workschedules", workscheduleHandler.ListWorkschedulesByCompany)
		}

		users := v1.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		workschedules := v1.Group("/workschedules")
		{
			workschedules.POST("", workscheduleHandler.CreateWorkschedule)
			workschedules.GET("/:id", workscheduleHandler.GetWorkschedule)
			workschedules.PATCH("/:id", workscheduleHandler.UpdateWorkschedule)
			workschedules.DELETE("/:id", workscheduleHandler.DeleteWorkschedule)
			workschedules.GET("/:id/users/:user_id/details", detailHandler.ListDetails)
		}

		details := v1.Group("/workschedule-details")
		{
			details.POST("", detailHandler.CreateDetail)
			details.POST("/bulk", detailHandler.BulkCreateDetail)
			details.POST("/bulk-delete", detailHandler.BulkRemoveDetails)
			details.GET("/:id", detailHandler.GetDetail)
			details.PATCH("/:id", detailHandler.UpdateDetail)
		}

		v1.PATCH("/workschedule-time-details/:id", detailHandler.UpdateTimeDetail)
	}

	return router
}
