package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/pokemon-gateway/internal/app/entities"
	"github.com/preston-bernstein/pokemon-gateway/internal/config"
	httpserver "github.com/preston-bernstein/pokemon-gateway/internal/http"
	"github.com/preston-bernstein/pokemon-gateway/internal/http/handlers"
	"github.com/preston-bernstein/pokemon-gateway/internal/http/middleware"
	"github.com/preston-bernstein/pokemon-gateway/internal/logging"
	"github.com/preston-bernstein/pokemon-gateway/internal/metrics"
	"github.com/preston-bernstein/pokemon-gateway/internal/providers"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	entities      *entities.Service
	handler       *handlers.Handler
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server around the configured provider.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.EntityProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.EntityProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}
	svc := entities.NewService(provider)
	httpSrv, handler := buildHTTPServer(cfg, svc, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		entities:      svc,
		handler:       handler,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, svc *entities.Service, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		entities:   svc,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, svc *entities.Service, logger *slog.Logger, recorder *metrics.Recorder) (httpServer, *handlers.Handler) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	handler := handlers.NewHandler(svc, cfg.ServiceName, logger)
	router := httpserver.NewRouter(handler)
	withCORS := middleware.CORS(middleware.CORSConfig{
		Origins:          cfg.CORS.Origins,
		Methods:          cfg.CORS.Methods,
		Headers:          cfg.CORS.Headers,
		AllowCredentials: cfg.CORS.AllowCredentials,
	}, router)
	wrapped := middleware.LoggingMiddleware(logger, recorder, withCORS)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeoutFor(cfg.PokeAPI.Timeout),
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}, handler
}

func writeTimeoutFor(upstream time.Duration) time.Duration {
	if padded := upstream + 5*time.Second; padded > writeTimeout {
		return padded
	}
	return writeTimeout
}

// Run starts the HTTP and metrics servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting",
		slog.String("addr", s.httpServer.Addr()),
		slog.String(logging.FieldProvider, s.cfg.Provider),
	)
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Health turns 503 before in-flight requests drain.
	if s.handler != nil {
		s.handler.BeginShutdown()
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// NewEntityService builds the fetch and transform pipeline without the HTTP or metrics servers.
func NewEntityService(cfg config.Config, logger *slog.Logger) *entities.Service {
	return entities.NewService(newProviderFactory(logger, nil).build(cfg))
}
