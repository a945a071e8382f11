package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ticklist/ticklist/internal/cache"
	"github.com/ticklist/ticklist/internal/config"
	"github.com/ticklist/ticklist/internal/db"
	"github.com/ticklist/ticklist/internal/repository"
	"github.com/ticklist/ticklist/internal/service"
)

type App struct {
	Cfg         *config.Config
	DB          *sqlx.DB
	TaskCache   *cache.TaskCache
	Mailer      *service.Mailer
	AuthService *service.AuthService
	TaskService *service.TaskService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	taskRepository := repository.NewTaskRepository(database)
	sessionRepository := repository.NewSessionRepository(database)

	// Optional task list cache (nil when REDIS_ADDR is unset)
	taskCache := cache.New(cfg.RedisAddr)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	mailer := service.NewMailer(emailService, cfg.MailQueueSize, cfg.MailWorkerCount)
	tokenCodec := service.NewTokenCodec(cfg.SecretKey)
	authService := service.NewAuthService(
		userRepository,
		sessionRepository,
		tokenCodec,
		mailer,
		cfg.IsProduction(),
		cfg.ConfirmTokenExpiry,
		cfg.SessionExpiry,
	)
	taskService := service.NewTaskService(taskRepository, taskCache)

	return &App{
		Cfg:         cfg,
		DB:          database,
		TaskCache:   taskCache,
		Mailer:      mailer,
		AuthService: authService,
		TaskService: taskService,
	}, nil
}

func (a *App) Close() error {
	if a.Mailer != nil {
		a.Mailer.Close()
	}
	if a.TaskCache != nil {
		_ = a.TaskCache.Close()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
