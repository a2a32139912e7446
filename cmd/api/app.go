package main

import (
	"log/slog"

	"bmi-calculator/internal/config"
	"bmi-calculator/internal/form"
	"bmi-calculator/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// App encapsulates application dependencies
type App struct {
	router      *gin.Engine
	logger      *slog.Logger
	formService form.Service
	registry    *prometheus.Registry
	cfg         *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	var recorder form.Recorder
	var registry *prometheus.Registry
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		recorder = metrics.New(registry)
	}

	app := &App{
		router:      router,
		logger:      logger,
		formService: form.NewFormService(logger, recorder),
		registry:    registry,
		cfg:         cfg,
	}

	// Register routes once; the submission handler is bound here
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
