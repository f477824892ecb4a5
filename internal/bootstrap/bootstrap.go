// Package bootstrap wires configuration, storage and the HTTP layer together.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/studentvault/backend/internal/app/controllers"
	appMigrations "github.com/studentvault/backend/internal/app/migrations"
	appRepos "github.com/studentvault/backend/internal/app/repositories"
	appRoutes "github.com/studentvault/backend/internal/app/routes"
	appServices "github.com/studentvault/backend/internal/app/services"
	"github.com/studentvault/backend/internal/config"
	"github.com/studentvault/backend/internal/db"
	appMiddleware "github.com/studentvault/backend/internal/middleware"
	pkgAuth "github.com/studentvault/backend/internal/pkg/auth"
	"github.com/studentvault/backend/internal/pkg/docstore"
	"github.com/studentvault/backend/internal/pkg/helpers"
	"github.com/studentvault/backend/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService      *appServices.AuthService
	UserService      *appServices.UserService
	RecordService    *appServices.RecordService
	AuthController   *appControllers.AuthController
	UserController   *appControllers.UserController
	RecordController *appControllers.RecordController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	Repos            *appRepos.Repositories
	TokenService     *pkgAuth.TokenService
	DocumentStore    docstore.DocumentStore
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database ready.")
	return dbPool, nil
}

// BuildDependencies constructs repositories, services, controllers and
// middleware on top of the connection pool.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	repos := appRepos.NewRepositories(dbPool)

	tokenService := pkgAuth.NewTokenService(pkgAuth.TokenConfig{
		AccessSecret:  cfg.JWT.AccessTokenSecret,
		RefreshSecret: cfg.JWT.RefreshTokenSecret,
		AccessExp:     helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		RefreshExp:    helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 240*time.Hour),
		Issuer:        cfg.JWT.Issuer,
	})

	docs, err := docstore.NewLocalStore(cfg.Server.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize document store: %w", err)
	}

	authService := appServices.NewAuthService(repos.UserRepository, tokenService, lgr)
	userService := appServices.NewUserService(repos.UserRepository, repos.PlacementRepository, lgr)
	recordService := appServices.NewRecordService(
		repos.UserRepository,
		repos.InternshipRepository,
		repos.HigherEducationRepository,
		repos.ProjectRepository,
		repos.AwardRepository,
		repos.ExamRepository,
		lgr,
	)

	deps := &Dependencies{
		AuthService:      authService,
		UserService:      userService,
		RecordService:    recordService,
		AuthController:   appControllers.NewAuthController(authService, docs, lgr),
		UserController:   appControllers.NewUserController(userService, docs, lgr),
		RecordController: appControllers.NewRecordController(recordService, docs, lgr),
		AuthMiddleware:   appMiddleware.NewAuthMiddleware(tokenService),
		Repos:            repos,
		TokenService:     tokenService,
		DocumentStore:    docs,
		Logger:           lgr,
	}

	return deps, nil
}

// SetupRouter builds the gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.UserController,
		deps.RecordController,
		deps.AuthMiddleware,
	)

	lgr.Info().Msg("Router configured")
	return router
}
