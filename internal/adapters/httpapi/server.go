package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/renato0307/shotbook/internal/config"
	"github.com/renato0307/shotbook/internal/logging"
	"github.com/renato0307/shotbook/internal/services"
)

// Headers identifying the operator. The caller is trusted: shotbook has no
// authentication of its own.
const (
	HeaderContextID  = "X-Context-ID"
	HeaderOperatorGM = "X-Operator-GM"
	HeaderOperatorID = "X-Operator-ID"
)

// Server exposes the attendance ledger and the operator flows over HTTP
type Server struct {
	attendance *services.AttendanceService
	defaults   config.SuggestDefaults
	engine     *gin.Engine
	flows      *services.FlowService
	suggestion *services.SuggestionService
}

// NewServer creates the router with all routes registered
func NewServer(
	attendance *services.AttendanceService,
	suggestion *services.SuggestionService,
	flows *services.FlowService,
	defaults config.SuggestDefaults,
) *Server {
	pendingSource.Store(flows)

	s := &Server{
		attendance: attendance,
		defaults:   defaults,
		engine:     gin.New(),
		flows:      flows,
		suggestion: suggestion,
	}

	s.engine.Use(gin.Recovery(), requestLogger(), metricsMiddleware())

	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api")
	{
		api.GET("/stats", s.stats)
		api.POST("/suggest", s.suggest)

		api.GET("/shots", s.listShots)
		api.GET("/shots/:id", s.getShot)
		api.DELETE("/shots/:id", s.deleteShot)

		flows := api.Group("/flows", operatorKey())
		flows.GET("", s.currentFlow)
		flows.DELETE("", s.cancelFlow)
		flows.POST("/record", s.startRecord)
		flows.POST("/suggest", s.startSuggest)
		flows.POST("/select", s.selectParticipants)
		flows.POST("/reset", s.resetFlow)
		flows.POST("/confirm", s.confirmFlow)
	}

	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("HTTP server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
		logging.Logger.Info("HTTP server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		return nil
	}
}

// requestLogger logs each request through the shotbook logger
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Logger.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"operator", c.GetHeader(HeaderOperatorID))
	}
}
