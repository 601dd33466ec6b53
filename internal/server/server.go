// Package server is the generation proxy. It holds the AI credential so
// clients can generate questions without one.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dayne-app/dayne/internal/auth"
	"github.com/dayne-app/dayne/internal/pipeline"
	"github.com/dayne-app/dayne/internal/questiongen"
	"github.com/dayne-app/dayne/internal/response"
)

// Config controls the HTTP surface.
type Config struct {
	GinMode string
	// AllowedOrigins empty allows every origin.
	AllowedOrigins []string
}

// Server serves the proxy routes.
type Server struct {
	pipeline *pipeline.Pipeline
	verifier *auth.Verifier
	metrics  *Metrics
	logger   zerolog.Logger
	cfg      Config
}

// New creates a Server. verifier may be nil, in which case every request
// is anonymous.
func New(p *pipeline.Pipeline, verifier *auth.Verifier, cfg Config, logger zerolog.Logger) *Server {
	return &Server{
		pipeline: p,
		verifier: verifier,
		metrics:  NewMetrics(),
		logger:   logger.With().Str("component", "server").Logger(),
		cfg:      cfg,
	}
}

// Metrics exposes the server's collectors.
func (s *Server) Metrics() *Metrics { return s.metrics }

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	if s.cfg.GinMode != "" {
		gin.SetMode(s.cfg.GinMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(s.cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = s.cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(RequestLogger(s.logger))
	router.Use(s.metrics.Middleware())

	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", s.metrics.Handler())

	v1 := router.Group("/api/v1")
	v1.Use(OptionalSession(s.verifier))
	{
		v1.POST("/questions", s.GenerateFromText)
		v1.POST("/questions/file", s.GenerateFromFile)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})
	return router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("server listening")
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

	s.logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) fail(c *gin.Context, err error) {
	status, code := classify(err)
	s.metrics.GenerationFailures.WithLabelValues(string(code)).Inc()

	msg := err.Error()
	if code == response.ErrInternal {
		s.logger.Error().Err(err).Str("request_id", c.GetString(response.ContextKeyRequestID)).Msg("generation failed")
		msg = response.GetMessage(code)
	}
	response.FailMessage(c, status, code, msg)
}

func (s *Server) succeed(c *gin.Context, source string, out pipeline.Outcome) {
	s.metrics.QuestionsGenerated.WithLabelValues(source).Add(float64(len(out.Questions)))
	response.Success(c, http.StatusOK, questiongen.QuestionsData{
		Questions: out.Questions,
		UploadID:  out.Persisted.UploadID,
	})
}
