package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"realty_backend/database"
	"realty_backend/internal/auth"
	"realty_backend/internal/config"
	"realty_backend/internal/email"
	"realty_backend/internal/handlers"
	"realty_backend/internal/logger"
	"realty_backend/internal/middleware"
	"realty_backend/internal/models"
	"realty_backend/internal/repositories"
	"realty_backend/internal/routes"
	"realty_backend/internal/services"
	"realty_backend/internal/storage"
	"realty_backend/internal/validator"
	"realty_backend/pkg/apperrors"

	_ "realty_backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	cfg, err := config.Load()
	if err != nil {
		// логгер еще не настроен
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.IsDevelopment())
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close(gormDB)
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(gormDB); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Если не удалось создать админа (проблемы с БД и т.д.) - не запускаем сервер
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, stopping HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}

// Option меняет зависимости, которые SetupRouter создает по умолчанию
type Option func(*options)

type options struct {
	emailProvider email.Provider
	tokenOptions  []auth.TokenOption
}

// WithEmailProvider подменяет отправку писем (используется в тестах)
func WithEmailProvider(p email.Provider) Option {
	return func(o *options) {
		o.emailProvider = p
	}
}

// WithTokenOptions передает опции в TokenService
func WithTokenOptions(opts ...auth.TokenOption) Option {
	return func(o *options) {
		o.tokenOptions = append(o.tokenOptions, opts...)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, opts ...Option) (*gin.Engine, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	storageInstance, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	if o.emailProvider == nil {
		o.emailProvider, err = newEmailProvider(cfg.Email)
		if err != nil {
			return nil, err
		}
	}

	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg, storageInstance, o)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(cfg, serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(gormDB)

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if local, ok := storageInstance.(*storage.LocalStorage); ok {
		ginRouter.Static("/files", local.BasePath())
	}

	// 4. Все API маршруты проходят через Guard
	guard := middleware.NewGuard(serviceContainer.AuthService, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, guard)

	return ginRouter, nil
}

func newEmailProvider(cfg config.EmailConfig) (email.Provider, error) {
	if !cfg.Enabled() {
		logger.Warn("SMTP is not configured, inquiry notifications are disabled")
		return email.NoopProvider{}, nil
	}

	templates, err := email.NewDefaultTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	provider := email.NewSMTPProvider(email.NewSMTPConfig(cfg), templates)
	if err := provider.Validate(); err != nil {
		return nil, fmt.Errorf("invalid SMTP configuration: %w", err)
	}
	return provider, nil
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage, o options) *services.ServiceContainer {
	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository()
	homeRepo := repositories.NewHomeRepository()
	messageRepo := repositories.NewMessageRepository()

	// --- Секреты читаются из конфигурации один раз ---
	tokenService := auth.NewTokenService(cfg.Auth, o.tokenOptions...)
	productKeys := auth.NewProductKeyIssuer(cfg.Auth.ProductKey)

	// --- Инициализация сервисов ---
	notificationService := services.NewNotificationService(o.emailProvider)
	authService := services.NewAuthService(userRepo, tokenService, productKeys)
	listingService := services.NewListingService(homeRepo, messageRepo, userRepo, notificationService)
	uploadService := services.NewUploadService(storageInstance, cfg.Upload)

	return &services.ServiceContainer{
		AuthService:         authService,
		ListingService:      listingService,
		UploadService:       uploadService,
		NotificationService: notificationService,
	}
}

func initializeHandlers(cfg *config.Config, services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, services.AuthService),
		ListingHandler: handlers.NewListingHandler(baseHandler, services.ListingService),
		UploadHandler:  handlers.NewUploadHandler(baseHandler, services.UploadService, cfg.Upload.MaxSize),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	admin := cfg.FirstAdmin
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	if admin.Email == "" || admin.Password == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		userRepo := repositories.NewUserRepository()

		exists, err := userRepo.ExistsByEmail(tx, admin.Email)
		if err != nil {
			return fmt.Errorf("failed to check for admin user: %w", err)
		}
		if exists {
			logger.Info("Admin user already exists. Skipping creation.", "email", admin.Email)
			return nil
		}

		logger.Warn("No admin user found with specified email. Creating first admin...", "email", admin.Email)

		hash, err := auth.HashPassword(admin.Password)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		name := admin.Name
		if name == "" {
			name = "Administrator"
		}

		newAdmin := &models.User{
			Name:         name,
			Email:        admin.Email,
			PasswordHash: hash,
			Role:         models.UserRoleAdmin,
		}
		if err := userRepo.Create(tx, newAdmin); err != nil {
			return fmt.Errorf("failed to create admin user in database: %w", err)
		}

		logger.Info("Successfully created first admin user", "email", admin.Email)
		return nil
	})
}
