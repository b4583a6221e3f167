// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	router "celestial-store/internal/api"
	"celestial-store/internal/api/handler"
	"celestial-store/internal/auth"
	"celestial-store/internal/config"
	"celestial-store/internal/repository"
	"celestial-store/internal/repository/postgres"
	"celestial-store/internal/repository/postgres/migrations"
	"celestial-store/internal/service"
	"celestial-store/internal/util"
	"celestial-store/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository    repository.UserRepository
	ProductRepository repository.ProductRepository
	ReviewRepository  repository.ReviewRepository

	// Services
	AccountService  service.AccountService
	CatalogService  service.CatalogService
	PurchaseService service.PurchaseService
	ReviewService   service.ReviewService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{Logger: util.GetLogger()}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(cfg.LogLevel)
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database and bring the schema up to date
	database, err := db.NewPostgresDB(ctx, app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if err := db.RunMigrations(ctx, app.DB, migrations.FS); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	app.Logger.Info("Database migrations applied.")

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository()
	app.ProductRepository = postgres.NewProductRepository()
	app.ReviewRepository = postgres.NewReviewRepository()
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	hasher := auth.NewBcryptHasher(app.Config.BcryptCost)
	app.AccountService = service.NewAccountService(app.DB, app.UserRepository, hasher)
	app.CatalogService = service.NewCatalogService(app.DB, app.ProductRepository)
	app.ReviewService = service.NewReviewService(app.DB, app.ReviewRepository)
	// Pass the concrete db.BeginTx, db.CommitTx, db.RollbackTx functions from pkg/db
	app.PurchaseService = service.NewPurchaseService(
		app.DB, // This is the DBTxBeginner
		app.UserRepository,
		app.ProductRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	// Balances and prices go out as JSON numbers, not strings. This is process-wide.
	decimal.MarshalJSONWithoutQuotes = true
	app.HTTPHandler = router.NewRouter(router.Handlers{
		Accounts:  handler.NewAccountHandler(app.AccountService, app.Logger),
		Catalog:   handler.NewCatalogHandler(app.CatalogService, app.Logger),
		Purchases: handler.NewPurchaseHandler(app.PurchaseService, app.Logger),
		Reviews:   handler.NewReviewHandler(app.ReviewService, app.Logger),
	}, app.Logger)
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
