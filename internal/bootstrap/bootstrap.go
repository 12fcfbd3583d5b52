package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/controllers"
	appRoutes "github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/routes"
	appServices "github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/services"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/store"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/config"
	appMiddleware "github.com/sandiphembram2021/seswa-fullstack-sub002/internal/middleware"
	pkgAuth "github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/auth"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/helpers"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/logger"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/websocket"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store             *store.Store
	Hub               *websocket.Hub
	WSHandler         *websocket.Handler
	JWTService        *pkgAuth.JWTService
	PortalService     appServices.PortalService // Interface type
	AuthService       *appServices.AuthService
	ActivityGenerator *appServices.ActivityGenerator
	HealthController  *appControllers.HealthController
	PortalController  *appControllers.PortalController
	AuthController    *appControllers.AuthController
	Logger            zerolog.Logger
	StartedAt         time.Time
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the store, realtime hub, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Store = store.New()
	deps.StartedAt = deps.Store.Analytics().ServerStartTime

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Auth.DemoTokenSecret,
		TokenExp:    helpers.ParseDuration(cfg.Auth.DemoTokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.Auth.Issuer,
	})

	// Realtime channel
	deps.Hub = websocket.NewHub(deps.Store, logger.Component("hub"))
	messages := websocket.NewMessageHandler(deps.Hub, deps.Store, deps.JWTService, logger.Component("session"))
	deps.WSHandler = websocket.NewHandler(
		deps.Hub,
		messages,
		cfg.CORS.AllowedOrigins,
		cfg.Realtime.SendBuffer,
		logger.Component("websocket"),
	)

	// Services
	deps.PortalService = appServices.NewPortalService(deps.Store, deps.Hub)
	deps.AuthService = appServices.NewAuthService(deps.JWTService, lgr)
	deps.ActivityGenerator = appServices.NewActivityGenerator(
		appServices.ActivityGeneratorConfig{
			LiveStatsInterval:  helpers.ParseDuration(cfg.Realtime.LiveStatsInterval, 5*time.Second),
			ActivityInterval:   helpers.ParseDuration(cfg.Realtime.ActivityInterval, 8*time.Second),
			MentorshipInterval: helpers.ParseDuration(cfg.Realtime.MentorshipInterval, 12*time.Second),
		},
		deps.Store,
		deps.Hub,
		logger.Component("generator"),
	)

	// Controllers
	deps.HealthController = appControllers.NewHealthController(deps.StartedAt)
	deps.PortalController = appControllers.NewPortalController(deps.PortalService, lgr)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)

	return deps, nil
}

// SeedData inserts the demo records when seeding is enabled.
func SeedData(ctx context.Context, cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) {
	if !cfg.Seed.Enabled {
		return
	}
	if err := seed.CreateDefaultData(ctx, deps.PortalService, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(logger.Component("http")))
	router.Use(appMiddleware.CORS(cfg.CORS.AllowedOrigins, cfg.CORS.AllowCredentials))

	appRoutes.SetupRouter(router,
		deps.HealthController,
		deps.PortalController,
		deps.AuthController,
		deps.WSHandler,
	)

	return router
}
