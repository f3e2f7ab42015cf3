// Package server exposes the solver over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/felixgeelhaar/fortify/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/comalice/rivercrossing/internal/core"
	"github.com/comalice/rivercrossing/internal/logging"
)

// Config configures a Server.
type Config struct {
	// ServiceName names the server in traces.
	ServiceName string
	// RateLimit is requests per second per client. Zero disables limiting.
	RateLimit int
	// Burst is the per-client bucket size.
	Burst int
	// Logger receives access and error logs. Nil discards them.
	Logger *bolt.Logger
}

// Server is the HTTP API over a core.Service.
type Server struct {
	svc    *core.Service
	router *gin.Engine
	logger *bolt.Logger
}

// New builds the router.
func New(svc *core.Service, cfg Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		svc:    svc,
		router: gin.New(),
		logger: cfg.Logger,
	}
	if s.logger == nil {
		s.logger = logging.Nop()
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "rivercrossing"
	}

	s.router.Use(gin.Recovery())
	s.router.Use(otelgin.Middleware(cfg.ServiceName))
	s.router.Use(s.requestIDMiddleware())
	s.router.Use(s.accessLogMiddleware())

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.NoRoute(func(c *gin.Context) {
		s.abort(c, http.StatusNotFound, "NOT_FOUND", "no route for "+c.Request.Method+" "+c.Request.URL.Path)
	})

	v1 := s.router.Group("/v1")
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = cfg.RateLimit
		}
		v1.Use(s.rateLimitMiddleware(ratelimit.New(&ratelimit.Config{
			Rate:     cfg.RateLimit,
			Burst:    burst,
			FailOpen: true,
		})))
	}
	v1.GET("/health", s.handleHealth)
	v1.GET("/puzzle", s.handlePuzzle)
	v1.POST("/solve", s.handleSolve)
	v1.POST("/moves", s.handleMoves)
	v1.GET("/graph", s.handleGraph)
	v1.GET("/reports/:id", s.handleReport)

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.NewEvent(s.logger.Info()).
			Add(logging.Component("server")).
			Add(logging.Str("addr", addr)).
			Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logging.NewEvent(s.logger.Info()).
		Add(logging.Component("server")).
		Msg("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) abort(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     msg,
		Code:      code,
		RequestID: getOrCreateRequestID(c),
	})
}
