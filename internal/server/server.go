// Package server exposes validation, submission, status, journal,
// signature verification and DGII catalogs over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rezonia/alanube-ecf/internal/alanube"
	"github.com/rezonia/alanube-ecf/internal/ecf"
	"github.com/rezonia/alanube-ecf/internal/journal"
	"github.com/rezonia/alanube-ecf/internal/signature"
)

// gatewayTimeout bounds every handler that calls the gateway
const gatewayTimeout = 60 * time.Second

// Config holds server configuration
type Config struct {
	Address      string        `validate:"required"`
	ReadTimeout  time.Duration `validate:"gte=0"`
	WriteTimeout time.Duration `validate:"gte=0"`
	Debug        bool
}

// Gateway is the part of the gateway client the server queries directly
type Gateway interface {
	Status(ctx context.Context, ep alanube.Endpoint, id, companyID string) (*alanube.DocumentResponse, error)
}

// Submitter submits documents and keeps their journal
type Submitter interface {
	Submit(ctx context.Context, doc ecf.Document) (*alanube.DocumentResponse, error)
	Refresh(ctx context.Context, key string) (journal.Entry, error)
	Journal() journal.Store
}

// Server represents the HTTP API server
type Server struct {
	config    *Config
	router    *gin.Engine
	gateway   Gateway
	submitter Submitter
	verifier  signature.Verifier
	gatherer  prometheus.Gatherer
	logger    *slog.Logger
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithVerifier enables POST /api/v1/verify
func WithVerifier(v signature.Verifier) Option {
	return func(s *Server) {
		s.verifier = v
	}
}

// WithGatherer sets the registry served on /metrics; the default is the
// global prometheus registry
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		if g != nil {
			s.gatherer = g
		}
	}
}

var validate = validator.New()

// NewServer creates a new API server
func NewServer(config *Config, gateway Gateway, submitter Submitter, opts ...Option) (*Server, error) {
	if config == nil {
		return nil, errors.New("server config is required")
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}
	if gateway == nil || submitter == nil {
		return nil, errors.New("gateway and submitter are required")
	}

	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:    config,
		router:    router,
		gateway:   gateway,
		submitter: submitter,
		gatherer:  prometheus.DefaultGatherer,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/validate/:kind", s.handleValidate)

		v1.POST("/documents", s.handleSubmitDocument)
		v1.GET("/documents/:type/:id", s.handleDocumentStatus)

		v1.POST("/cancellations", s.handleSubmitCancellation)
		v1.GET("/cancellations/:id", s.handleCancellationStatus)

		v1.GET("/journal", s.handleJournalList)
		v1.GET("/journal/:encf", s.handleJournalEntry)

		v1.POST("/verify", s.handleVerify)

		v1.GET("/catalog", s.handleCatalogNames)
		v1.GET("/catalog/:name", s.handleCatalog)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "address", s.config.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}
