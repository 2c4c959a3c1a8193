// Package api exposes the router over HTTP. Handlers are thin: they decode,
// call the facade, and encode; every decision lives in the engine packages.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mcp-router/mcp-router/pkg/router"
)

// Timeouts for the HTTP server itself. Tool execution has its own deadline
// inside the adapter layer.
const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server is the HTTP front of the router.
type Server struct {
	router *router.Router
	engine *gin.Engine
	http   *http.Server

	logger *slog.Logger
}

// NewServer creates the HTTP server around an initialized router facade.
func NewServer(r *router.Router) *Server {
	s := &Server{
		router: r,
		logger: slog.With("subsystem", "api"),
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLogger(s.logger), securityHeaders())

	engine.GET("/health", s.healthHandler)

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/servers", s.listServersHandler)
		v1.POST("/servers", s.registerServerHandler)
		v1.GET("/servers/:id", s.getServerHandler)
		v1.DELETE("/servers/:id", s.unregisterServerHandler)
		v1.GET("/servers/:id/health", s.serverHealthHandler)
		v1.GET("/servers/:id/tools", s.serverToolsHandler)
		v1.POST("/servers/:id/tools/refresh", s.refreshToolsHandler)
		v1.POST("/servers/:id/tools/:tool/call", s.executeToolHandler)
		v1.GET("/servers/:id/usage", s.usageStatsHandler)

		v1.POST("/route", s.routeHandler)
		v1.POST("/analyze", s.analyzeHandler)

		v1.GET("/capabilities", s.capabilitiesHandler)
		v1.GET("/capabilities/:cap/servers", s.serversByCapabilityHandler)
		v1.GET("/tags", s.tagsHandler)
		v1.GET("/tags/:tag/servers", s.serversByTagHandler)

		v1.GET("/cache/stats", s.cacheStatsHandler)
		v1.DELETE("/cache", s.clearCacheHandler)

		v1.GET("/plugins", s.listPluginsHandler)
		v1.GET("/plugins/:name", s.getPluginHandler)
		v1.GET("/adapters", s.listAdaptersHandler)
	}

	s.engine = engine
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until the context is canceled, then drains connections.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()
	s.logger.Info("API server listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
