package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nao1215/resumeparser/internal/config"
	"github.com/nao1215/resumeparser/internal/pipeline"
)

// DefaultShutdownTimeout bounds the wait for in-flight requests on shutdown.
const DefaultShutdownTimeout = 10 * time.Second

// Server is the HTTP front end of the parser.
type Server struct {
	echo           *echo.Echo
	handler        *Handler
	addr           string
	uploadDir      string
	maxUploadSize  int64
	requestTimeout time.Duration
	checks         []ResourceCheck
	logger         *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithAddress sets the listen address.
func WithAddress(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithUploadDir sets the directory that holds uploads while they are
// parsed. It is created if missing.
func WithUploadDir(dir string) Option {
	return func(s *Server) {
		s.uploadDir = dir
	}
}

// WithMaxUploadSize limits the request body in bytes.
func WithMaxUploadSize(n int64) Option {
	return func(s *Server) {
		s.maxUploadSize = n
	}
}

// WithRequestTimeout bounds the handling of one request.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.requestTimeout = d
	}
}

// WithResourceChecks adds resources reported by GET /health.
func WithResourceChecks(checks ...ResourceCheck) Option {
	return func(s *Server) {
		s.checks = append(s.checks, checks...)
	}
}

// WithLogger sets the logger for requests and server events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a server around parser and registers its routes.
func New(parser pipeline.DocumentParser, opts ...Option) (*Server, error) {
	s := &Server{
		addr:           config.DefaultListenAddress,
		uploadDir:      config.UploadDir(),
		maxUploadSize:  config.DefaultMaxUploadSize,
		requestTimeout: config.DefaultRequestTimeout,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(s.uploadDir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUploadDirUnavailable, err)
	}

	s.handler = NewHandler(parser, s.uploadDir, s.logger, s.checks...)
	s.echo = s.newEcho()
	return s, nil
}

// Handler returns the HTTP handler with every route and middleware.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("upload server listening", "address", s.addr)
		errCh <- s.echo.Start(s.addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down upload server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10,
		LogErrorFunc: func(_ echo.Context, err error, stack []byte) error {
			s.logger.Error("handler panic", "error", err, "stack", string(stack))
			return err
		},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				s.logger.Warn("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			s.logger.Info("request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.BodyLimit(strconv.FormatInt(s.maxUploadSize, 10)))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      s.requestTimeout,
		ErrorMessage: timeoutBody,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
	}))

	RegisterRoutes(e, s.handler)
	return e
}

// RegisterRoutes registers the parser endpoints on e.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.HandleHealth)
	e.POST("/parse_resume", h.HandleParseResume)
}
