package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/bilguun/eduview/internal/app/controllers"
	appRepos "github.com/bilguun/eduview/internal/app/repositories"
	appRoutes "github.com/bilguun/eduview/internal/app/routes"
	appServices "github.com/bilguun/eduview/internal/app/services"
	"github.com/bilguun/eduview/internal/config"
	appMiddleware "github.com/bilguun/eduview/internal/middleware"
	"github.com/bilguun/eduview/internal/pkg/logger"
	"github.com/bilguun/eduview/internal/pkg/metrics"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	TimetableService    appServices.TimetableService // Interface type
	PagesController     *appControllers.PagesController
	TimetableController *appControllers.TimetableController
	Store               *appRepos.TimetableStore
	Recorder            *metrics.Recorder
	Logger              zerolog.Logger
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// LoadTimetables parses the export files into the immutable store. A missing
// or unreadable export is fatal: the process must not serve without data.
func LoadTimetables(cfg *config.Config, lgr zerolog.Logger) (*appRepos.TimetableStore, error) {
	lgr.Info().
		Str("classesFile", cfg.Data.ClassesFile).
		Str("teachersFile", cfg.Data.TeachersFile).
		Msg("Loading timetable exports...")

	store, err := appRepos.LoadTimetableStore(cfg.Data.ClassesFile, cfg.Data.TeachersFile, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load timetable exports")
		return nil, err
	}
	return store, nil
}

// BuildDependencies initializes the application services and controllers.
func BuildDependencies(cfg *config.Config, store *appRepos.TimetableStore, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Store: store}

	recorder, err := metrics.NewRecorder(nil)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to register metrics")
		return nil, err
	}
	deps.Recorder = recorder

	deps.TimetableService = appServices.NewTimetableService(store)
	deps.PagesController = appControllers.NewPagesController(deps.TimetableService, recorder)
	deps.TimetableController = appControllers.NewTimetableController(deps.TimetableService, recorder)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	router.LoadHTMLGlob(cfg.Data.TemplatesGlob)

	appRoutes.SetupRouter(router, deps.PagesController, deps.TimetableController)

	return router
}
