package server

import (
	"github.com/GriffinCanCode/ProbKit/internal/config"
	"github.com/GriffinCanCode/ProbKit/internal/dist"
	httphandlers "github.com/GriffinCanCode/ProbKit/internal/http"
	"github.com/GriffinCanCode/ProbKit/internal/logging"
	"github.com/GriffinCanCode/ProbKit/internal/middleware"
	"github.com/GriffinCanCode/ProbKit/internal/monitoring"
	"github.com/GriffinCanCode/ProbKit/internal/providers/probability"
	"github.com/GriffinCanCode/ProbKit/internal/service"
	"github.com/GriffinCanCode/ProbKit/internal/ws"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	metrics := monitoring.NewMetrics()

	// Service registry with the probability provider
	registry := service.NewRegistry().WithMetrics(metrics)
	registerProviders(registry, cfg, logger)

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(middleware.RequestID())
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}
	router.Use(monitoring.Middleware(metrics))

	// Create handlers
	handlers := httphandlers.NewHandlers(registry, metrics, logger)
	wsHandler := ws.NewHandler(metrics, logger, cfg.Sampling.MaxBatch)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	return &Server{
		router:   router,
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}, nil
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server
func (s *Server) Run(addr string) error {
	s.logger.Info("starting probability service", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close cleans up resources. Sync errors are swallowed: syncing stdout
// fails on some platforms.
func (s *Server) Close() error {
	_ = s.logger.Sync()
	return nil
}

func registerProviders(registry *service.Registry, cfg *config.Config, logger *logging.Logger) {
	probProvider := probability.NewProvider(probability.Options{
		Quadrature: dist.Quadrature{
			Nodes:      cfg.Quadrature.Nodes,
			TailSigmas: cfg.Quadrature.TailSigmas,
		},
		MaxSamples: cfg.Sampling.MaxBatch,
	})
	if err := registry.Register(probProvider); err != nil {
		logger.Warn("failed to register probability provider", zap.Error(err))
	}

	stats := registry.Stats()
	logger.Info("registered services",
		zap.Any("total_services", stats["total_services"]),
		zap.Any("total_tools", stats["total_tools"]),
	)
}
