package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"github.com/pageza/nubereats/backend/config"
	"github.com/pageza/nubereats/backend/internal/api"
	"github.com/pageza/nubereats/backend/internal/graphql"
	"github.com/pageza/nubereats/backend/internal/metrics"
	"github.com/pageza/nubereats/backend/internal/middleware"
)

const shutdownTimeout = 10 * time.Second

// Options are the collaborators the HTTP server is assembled from.
// Uploads and RateLimiter are optional.
type Options struct {
	Config      *config.Config
	Log         *zap.Logger
	Schema      *graphqlgo.Schema
	Auth        middleware.Authenticator
	Uploads     api.ObjectStore
	RateLimiter *middleware.RateLimiter
	Checks      map[string]api.Check
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	log    *zap.Logger
}

// New builds the gin engine with every route registered
func New(opts Options) *Server {
	if opts.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestLogger(opts.Log),
		middleware.Recovery(opts.Log),
		middleware.CORS(opts.Config.CORSOrigins),
		middleware.AuthMiddleware(opts.Auth),
	)

	router.GET("/health", api.Health(opts.Checks))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	limited := router.Group("/")
	if opts.RateLimiter != nil {
		limited.Use(opts.RateLimiter.Middleware())
	}
	limited.POST("/graphql", gin.WrapH(graphql.Handler(opts.Schema)))

	if opts.Uploads != nil {
		uploads := api.NewUploadHandler(opts.Uploads, opts.Log)
		limited.POST("/uploads", middleware.RequirePrincipal(), uploads.Upload)
	}

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              opts.Config.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: opts.Log,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
