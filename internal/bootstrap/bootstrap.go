package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/coursecatalog/internal/app/controllers"
	appRepos "github.com/yigit/coursecatalog/internal/app/repositories"
	appRoutes "github.com/yigit/coursecatalog/internal/app/routes"
	appServices "github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/config"
	appMiddleware "github.com/yigit/coursecatalog/internal/middleware"
	"github.com/yigit/coursecatalog/internal/pkg/logger"
	"github.com/yigit/coursecatalog/internal/seed"
)

// ServiceName is attached to every log event
const ServiceName = "course-catalog"

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService       appServices.CatalogService
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	ScheduleController   *appControllers.ScheduleController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
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

	lgr := logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  prettyLog,
		Service: ServiceName,
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the catalog store, service and controllers,
// loading the default courses when seeding is enabled.
func BuildDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()
	deps.CatalogService = appServices.NewCatalogService(deps.Repos.CatalogRepository)

	if cfg.Catalog.Seed {
		if err := seed.CreateDefaultData(ctx, deps.CatalogService, lgr); err != nil {
			// the catalog stays usable without the example courses
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	} else {
		lgr.Info().Msg("Seeding disabled, starting with an empty catalog")
	}

	deps.CourseController = appControllers.NewCourseController(deps.CatalogService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.CatalogService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.CatalogService)

	return deps, nil
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
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
	)

	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.EnrollmentController,
		deps.ScheduleController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
