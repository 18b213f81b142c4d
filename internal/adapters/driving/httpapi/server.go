package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jacobp93/Greggs-Location-app/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Option configures a Server.
type Option func(*Server)

// WithMCP mounts an MCP streamable HTTP handler at /mcp.
func WithMCP(h http.Handler) Option {
	return func(s *Server) {
		s.mcp = h
	}
}

// Server is the HTTP API for the finder.
type Server struct {
	ports  *Ports
	engine *gin.Engine
	mcp    http.Handler
}

// SetMode selects gin's release or debug mode and routes gin's own output
// through the application logger.
func SetMode(verbose bool) {
	if verbose {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logger.Writer()
	gin.DefaultErrorWriter = logger.Writer()
}

// NewServer creates the API server and registers its routes.
func NewServer(ports *Ports, opts ...Option) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{ports: ports}
	for _, opt := range opts {
		opt(s)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLogger())
	s.engine = engine
	s.routes()

	return s, nil
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.handleHealth)

	v1 := s.engine.Group("/api/v1")
	v1.GET("/nearest", s.handleNearest)
	v1.DELETE("/geocodes", s.handleClearGeocodes)
	v1.DELETE("/geocodes/:postcode", s.handleInvalidateGeocode)

	if s.mcp != nil {
		s.engine.Any("/mcp", gin.WrapH(s.mcp))
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves the API on addr until the context is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP shutdown: %v", err)
		}
	}()

	logger.Info("HTTP API listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
