// Package api exposes the document analysis engine over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/clauseguard-server/internal/cache"
	"github.com/clauseguard-server/internal/compare"
	"github.com/clauseguard-server/internal/domain"
	"github.com/clauseguard-server/internal/engine"
	"github.com/clauseguard-server/internal/feedback"
	"github.com/clauseguard-server/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	cfg      *domain.Config
	engine   *engine.Engine
	comparer *compare.Service
	results  *cache.Cache[domain.AnalysisResult]
	store    feedback.Store
	metrics  *metrics
	router   *gin.Engine
	server   *http.Server
	log      *logrus.Logger
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *domain.Config,
	eng *engine.Engine,
	comparer *compare.Service,
	results *cache.Cache[domain.AnalysisResult],
	store feedback.Store,
	logger *logrus.Logger,
) *Server {
	// Set Gin mode based on environment
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimit(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))

	server := &Server{
		cfg:      cfg,
		engine:   eng,
		comparer: comparer,
		results:  results,
		store:    store,
		metrics:  newMetrics(),
		router:   router,
		log:      logger,
	}

	server.setupRoutes()

	return server
}

// Router returns the configured gin handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.cfg.Server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("HTTP server listening")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.log.Info("Shutting down HTTP server")
	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/analyze", s.handleAnalyze)
		v1.GET("/analysis/:id", s.handleGetAnalysis)
		v1.GET("/analysis/:id/export/:format", s.handleExport)
		v1.POST("/compare", s.handleCompare)
		v1.POST("/rank", s.handleRank)
		v1.POST("/feedback", s.handleCreateFeedback)
		v1.GET("/feedback", s.handleListFeedback)
		v1.GET("/feedback/stats", s.handleFeedbackStats)
	}
}
