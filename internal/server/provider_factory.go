package server

import (
	"log/slog"

	"github.com/preston-bernstein/pokemon-gateway/internal/config"
	"github.com/preston-bernstein/pokemon-gateway/internal/metrics"
	"github.com/preston-bernstein/pokemon-gateway/internal/providers"
)

// providerFactory assembles the configured provider with per-call instrumentation.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.EntityProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.EntityProvider) providers.EntityProvider {
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base))
}
