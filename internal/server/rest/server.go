// Package rest exposes the bookshop over HTTP: public catalog reads,
// registration and login, and token-protected review mutations.
package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/bookshop/internal/logging"
	"github.com/dmitrijs2005/bookshop/internal/server/config"
	"github.com/dmitrijs2005/bookshop/internal/server/services"
)

type Server struct {
	address     string
	logger      logging.Logger
	users       *services.UserService
	books       *services.BookService
	jwtSecret   []byte
	corsOrigins string
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, bs *services.BookService) *Server {
	gin.SetMode(cfg.GinMode)
	return &Server{
		address:     cfg.EndpointAddr,
		logger:      l.With("module", "rest_server"),
		users:       us,
		books:       bs,
		jwtSecret:   []byte(cfg.SecretKey),
		corsOrigins: cfg.CORSAllowedOrigins,
	}
}

// Router assembles the gin engine. It is separate from Run so tests can
// drive the full routing stack through httptest without binding a port.
func (s *Server) Router() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(s.corsConfig()))

	engine.GET("/books", s.listBooks)
	engine.GET("/books/:isbn", s.getBookByISBN)
	engine.GET("/books/:isbn/review", s.bookReviews)

	engine.POST("/register", s.registerUser)
	engine.POST("/login", s.login)

	authorized := engine.Group("/", s.authRequired())
	authorized.POST("/books/:isbn/review", s.upsertReview)
	authorized.DELETE("/books/:isbn/review", s.deleteReview)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
	})

	return engine
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if s.corsOrigins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(s.corsOrigins, ",")
	}
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	return cfg
}

// Run serves HTTP on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
