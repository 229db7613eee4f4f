// Package httpapi exposes the HTTP surface of identity-service: the public
// signup/login endpoints and the token-gated identity CRUD routes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkravchenko/identity-service/internal/logging"
	"github.com/dkravchenko/identity-service/internal/server/auth"
	"github.com/dkravchenko/identity-service/internal/server/credentials"
	"github.com/dkravchenko/identity-service/internal/server/identities"
)

type Server struct {
	address     string
	logger      logging.Logger
	credentials *credentials.Service
	identities  *identities.Service
	tokens      *auth.TokenService
	engine      *gin.Engine
}

func NewServer(address string, l logging.Logger, cs *credentials.Service, is *identities.Service, ts *auth.TokenService) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		address:     address,
		logger:      l.With("module", "http_server"),
		credentials: cs,
		identities:  is,
		tokens:      ts,
		engine:      engine,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World")
	})
	s.engine.GET("/ping", func(c *gin.Context) {
		respond(c, http.StatusOK, "pong", nil)
	})

	s.engine.POST("/signup", s.signup)
	s.engine.POST("/login", s.login)

	protected := s.engine.Group("/identity", s.requireAuth)
	protected.POST("", s.createIdentity)
	protected.GET("", s.listIdentities)
	protected.GET("/:id", s.getIdentity)
	protected.PATCH("/:id", s.updateIdentity)
	protected.DELETE("/:id", s.deleteIdentity)
}

// Handler returns the routed engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
