package app

import (
	"fmt"

	"fixnow_backend/database"
	"fixnow_backend/internal/config"
	"fixnow_backend/internal/email"
	"fixnow_backend/internal/handlers"
	"fixnow_backend/internal/logger"
	"fixnow_backend/internal/middleware"
	"fixnow_backend/internal/repositories"
	"fixnow_backend/internal/routes"
	"fixnow_backend/internal/services"
	"fixnow_backend/internal/storage"
	"fixnow_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run boots the whole application: configuration, logging, database,
// migrations, HTTP server.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles the gin engine with all dependencies wired. It is
// shared between Run and the integration test server.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "path", cfg.Storage.BasePath)

	serviceContainer := initializeServices(cfg, store)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, store.BasePath())

	return ginRouter
}

func initializeServices(cfg *config.Config, store storage.Storage) *services.ServiceContainer {
	emailProvider := email.NewProvider(cfg)
	if !emailProvider.Enabled() {
		logger.Warn("SMTP is not fully configured, verification links are returned in responses")
	}

	userRepo := repositories.NewUserRepository()
	tokenRepo := repositories.NewVerificationTokenRepository()
	serviceRepo := repositories.NewServiceRepository()
	jobRepo := repositories.NewJobRepository()

	authService := services.NewAuthService(userRepo, tokenRepo, emailProvider)
	userService := services.NewUserService(userRepo)
	catalogService := services.NewCatalogService(serviceRepo)
	jobService := services.NewJobService(jobRepo, serviceRepo)
	uploadService := services.NewUploadService(userRepo, store, services.UploadConfig{
		MaxAvatarSize: cfg.Upload.MaxAvatarSize,
	})

	return &services.ServiceContainer{
		AuthService:    authService,
		UserService:    userService,
		CatalogService: catalogService,
		JobService:     jobService,
		UploadService:  uploadService,
		EmailProvider:  emailProvider,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, container.AuthService),
		MeHandler:      handlers.NewMeHandler(baseHandler, container.UserService),
		ServiceHandler: handlers.NewServiceHandler(baseHandler, container.CatalogService, container.JobService),
		UploadHandler:  handlers.NewUploadHandler(baseHandler, container.UploadService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
