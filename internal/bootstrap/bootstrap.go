package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	appauth "github.com/careerguide/backend/internal/app/auth"
	"github.com/careerguide/backend/internal/app/controllers"
	"github.com/careerguide/backend/internal/app/migrations"
	"github.com/careerguide/backend/internal/app/repositories"
	"github.com/careerguide/backend/internal/app/routes"
	"github.com/careerguide/backend/internal/app/services"
	"github.com/careerguide/backend/internal/config"
	"github.com/careerguide/backend/internal/db"
	"github.com/careerguide/backend/internal/middleware"
	"github.com/careerguide/backend/internal/pkg/auth"
	"github.com/careerguide/backend/internal/pkg/filestorage"
	"github.com/careerguide/backend/internal/pkg/helpers"
	"github.com/careerguide/backend/internal/pkg/logger"
	"github.com/careerguide/backend/internal/seed"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Pinger reports database reachability for /health
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *repositories.Repositories
	Services       *services.Services
	Controllers    routes.Controllers
	AuthMiddleware *middleware.AuthMiddleware
	JWTService     *auth.JWTService
	FileStorage    *filestorage.LocalStorage
	Metrics        *prometheus.Registry
	DB             Pinger
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  strings.ToLower(cfg.Logging.Format) == "text",
		Service: "careerguide",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection pool.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("Establishing database connection...")
	pool, err := db.NewPostgresPool(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return pool, nil
}

// RunMigrations applies every pending embedded migration.
func RunMigrations(ctx context.Context, pool db.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	if err := migrations.NewMigrator(pool).Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SeedDefaultData creates the configured default admin. Failures are logged, not fatal.
func SeedDefaultData(ctx context.Context, cfg *config.Config, repos *repositories.Repositories, lgr zerolog.Logger) {
	if err := seed.CreateDefaultAdmin(ctx, repos.AdminRepository, cfg, auth.HashPassword, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default admin, proceeding anyway...")
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, pool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, DB: pool}

	deps.Repos = repositories.NewRepositories(pool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.PublicURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = services.NewServices(deps.Repos, deps.JWTService, deps.FileStorage)
	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = routes.Controllers{
		Homepage:   controllers.NewHomepageController(),
		Auth:       controllers.NewAuthController(deps.Services.AuthService),
		Admin:      controllers.NewAdminController(deps.Services.AdminService, appauth.NewAuthorizationService(deps.Repos.AdminRepository)),
		CareerTest: controllers.NewCareerTestController(deps.Services.CareerTestService),
		CareerPage: controllers.NewCareerPageController(deps.Services.CareerPageService),
	}

	deps.Metrics = NewMetricsRegistry()

	return deps, nil
}

// NewMetricsRegistry returns a registry with the Go runtime and process collectors
func NewMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// corsConfig allows every origin when the list is empty or contains "*"
func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader}
	c.ExposeHeaders = []string{middleware.RequestIDHeader}
	c.MaxAge = 12 * time.Hour

	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := middleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.MaxMultipartMemory = 8 << 20
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(),
		middleware.NewMetricsBuilder(deps.Metrics).Build(),
		cors.New(corsConfig(cfg.AllowedOrigins())),
	)

	routes.SetupSwagger(router)
	routes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, cfg.JWT.ProtectAdmin)

	router.Static("/uploads", cfg.Server.StoragePath)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	router.GET("/health", healthHandler(deps.DB))

	if cfg.JWT.ProtectAdmin {
		lgr.Info().Msg("Admin routes require an admin bearer token")
	}
	return router, nil
}

func healthHandler(pinger Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if pinger != nil {
			if err := pinger.Ping(ctx); err != nil {
				logger.Warn().Err(err).Msg("Health check failed")
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	}
}
