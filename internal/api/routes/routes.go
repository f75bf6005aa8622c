package routes

import (
	"instrument-tray-backend/internal/api/handlers"
	"instrument-tray-backend/internal/api/middleware"
	"instrument-tray-backend/internal/auth"
	"instrument-tray-backend/internal/config"
	"instrument-tray-backend/internal/database/models"
	"instrument-tray-backend/internal/policy"
	"instrument-tray-backend/internal/redis"
	"instrument-tray-backend/internal/repository"
	"instrument-tray-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, blacklist *redis.Client) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator and role policy
	validator := validator.New()
	rolePolicy := policy.New(policy.DefaultRanks())

	// Initialize repositories
	departmentRepo := repository.NewDepartmentRepository(db)
	manufacturerRepo := repository.NewManufacturerRepository(db)
	instrumentRepo := repository.NewInstrumentRepository(db)
	userRepo := repository.NewUserRepository(db)
	trayRepo := repository.NewTrayRepository(db)
	changeRequestRepo := repository.NewChangeRequestRepository(db)

	// Initialize services
	departmentService := service.NewDepartmentService(departmentRepo, validator)
	manufacturerService := service.NewManufacturerService(manufacturerRepo, validator)
	instrumentService := service.NewInstrumentService(instrumentRepo, manufacturerRepo, trayRepo, validator)
	userService := service.NewUserService(userRepo, departmentRepo, validator)
	trayService := service.NewTrayService(trayRepo, departmentRepo, instrumentRepo, validator)
	changeRequestService := service.NewChangeRequestService(changeRequestRepo, trayRepo, validator)
	approvalService := service.NewApprovalService(changeRequestRepo, trayRepo, rolePolicy)
	exportService := service.NewExportService(trayRepo)

	// Initialize auth
	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiresIn, userRepo, blacklist)
	authHandler := auth.NewHandler(authService, userService)
	authMiddleware := auth.NewMiddleware(authService, rolePolicy)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	manufacturerHandler := handlers.NewManufacturerHandler(manufacturerService)
	instrumentHandler := handlers.NewInstrumentHandler(instrumentService)
	userHandler := handlers.NewUserHandler(userService)
	trayHandler := handlers.NewTrayHandler(trayService, exportService)
	changeRequestHandler := handlers.NewChangeRequestHandler(changeRequestService, approvalService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		authGroup.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
		authGroup.POST("/register",
			authMiddleware.RequireAuth(),
			authMiddleware.RequireRole(models.RoleOpManager),
			authHandler.Register)
	}

	// API v1 routes, all require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Department routes; management is restricted to OP managers
		departments := v1.Group("/departments")
		{
			departments.GET("", departmentHandler.GetAll)
			departments.GET("/:id", departmentHandler.GetByID)
			departments.POST("", authMiddleware.RequireRole(models.RoleOpManager), departmentHandler.Create)
			departments.PUT("/:id", authMiddleware.RequireRole(models.RoleOpManager), departmentHandler.Update)
			departments.DELETE("/:id", authMiddleware.RequireRole(models.RoleOpManager), departmentHandler.Delete)
		}

		// Manufacturer routes
		manufacturers := v1.Group("/manufacturers")
		{
			manufacturers.GET("", manufacturerHandler.GetAll)
			manufacturers.GET("/:id", manufacturerHandler.GetByID)
			manufacturers.POST("", authMiddleware.RequireTrayEditor(), manufacturerHandler.Create)
			manufacturers.PUT("/:id", authMiddleware.RequireTrayEditor(), manufacturerHandler.Update)
			manufacturers.DELETE("/:id", authMiddleware.RequireTrayEditor(), manufacturerHandler.Delete)
		}

		// Instrument catalog routes
		instruments := v1.Group("/instruments")
		{
			instruments.GET("", instrumentHandler.GetAll)
			instruments.GET("/:id", instrumentHandler.GetByID)
			instruments.POST("", authMiddleware.RequireTrayEditor(), instrumentHandler.Create)
			instruments.PUT("/:id", authMiddleware.RequireTrayEditor(), instrumentHandler.Update)
			instruments.DELETE("/:id", authMiddleware.RequireTrayEditor(), instrumentHandler.Delete)
		}

		// User management routes; restricted to OP managers
		users := v1.Group("/users")
		users.Use(authMiddleware.RequireRole(models.RoleOpManager))
		{
			users.GET("", userHandler.GetAll)
			users.POST("", userHandler.Create)
			users.GET("/:id", userHandler.GetByID)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Deactivate)
		}

		// Tray routes; reads for everyone, direct edits for editor roles
		trays := v1.Group("/trays")
		{
			trays.GET("", trayHandler.GetAll)
			trays.GET("/:id", trayHandler.GetByID)
			trays.GET("/:id/export", trayHandler.Export)
			trays.POST("", authMiddleware.RequireTrayEditor(), trayHandler.Create)
			trays.PUT("/:id", authMiddleware.RequireTrayEditor(), trayHandler.Update)
			trays.DELETE("/:id", authMiddleware.RequireTrayEditor(), trayHandler.Archive)
			trays.POST("/:id/items", authMiddleware.RequireTrayEditor(), trayHandler.AddItem)
			trays.PUT("/:id/items/:instrumentId", authMiddleware.RequireTrayEditor(), trayHandler.UpdateItem)
			trays.DELETE("/:id/items/:instrumentId", authMiddleware.RequireTrayEditor(), trayHandler.RemoveItem)
		}

		// Change request routes; proposing is open to all authenticated
		// staff, deciding is authorized inside the approval service
		changeRequests := v1.Group("/change-requests")
		{
			changeRequests.GET("", changeRequestHandler.List)
			changeRequests.GET("/pending", changeRequestHandler.ListPending)
			changeRequests.GET("/:id", changeRequestHandler.GetByID)
			changeRequests.POST("", changeRequestHandler.Propose)
			changeRequests.POST("/:id/approve", changeRequestHandler.Approve)
			changeRequests.POST("/:id/reject", changeRequestHandler.Reject)
		}
	}

	return router
}
