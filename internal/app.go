// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "payline/internal/api"
	"payline/internal/api/handler"
	"payline/internal/auth"
	"payline/internal/config"
	"payline/internal/repository"
	"payline/internal/repository/postgres"
	"payline/internal/service"
	"payline/internal/util"
	"payline/migrations"
	"payline/pkg/db"
)

// Application holds all the initialized components of the service.
// It is the one explicitly constructed context object: everything the core
// needs (storage handle, repositories, secrets-bearing codecs) is built here
// at startup and passed down by parameter, never read from globals.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository    repository.UserRepository
	SessionRepository repository.SessionRepository
	AccountRepository repository.AccountRepository
	PaymentRepository repository.PaymentRepository

	// Services
	AuthService    service.AuthService
	UserService    service.UserService
	AccountService service.AccountService
	PaymentService service.PaymentService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	util.InitLogger()
	app.Logger = util.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.")

	database, err := db.NewPostgresDB(cfg.PostgresConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if err := db.RunMigrations(ctx, database, migrations.FS, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	app.Logger.Info("Migrations applied.")

	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.SessionRepository = postgres.NewSessionRepository(app.DB)
	app.AccountRepository = postgres.NewAccountRepository(app.DB)
	app.PaymentRepository = postgres.NewPaymentRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	codec := auth.NewCodec(cfg.Secrets.PasswordSalt, cfg.Secrets.CookieKey)
	verifier := auth.NewWebhookVerifier(cfg.Secrets.WebhookKey)

	app.AuthService = service.NewAuthService(
		app.DB,
		codec,
		app.UserRepository,
		app.SessionRepository,
		app.Logger,
	)
	app.UserService = service.NewUserService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		codec,
		app.UserRepository,
		app.SessionRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
		app.Logger,
	)
	app.AccountService = service.NewAccountService(
		app.DB,
		app.UserRepository,
		app.AccountRepository,
		app.Logger,
	)
	app.PaymentService = service.NewPaymentService(
		app.DB,
		verifier,
		app.UserRepository,
		app.AccountRepository,
		app.PaymentRepository,
		app.Logger,
	)
	app.Logger.Info("Services initialized.")

	userHandler := handler.NewUserHandler(app.AuthService, app.UserService, app.Logger)
	accountHandler := handler.NewAccountHandler(app.AuthService, app.AccountService, app.Logger)
	paymentHandler := handler.NewPaymentHandler(app.AuthService, app.PaymentService, app.Logger)
	app.HTTPHandler = router.NewRouter(userHandler, accountHandler, paymentHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
