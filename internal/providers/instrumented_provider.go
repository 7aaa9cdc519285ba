package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/pokemon-gateway/internal/logging"
	"github.com/preston-bernstein/pokemon-gateway/internal/metrics"
)

// instrumentedProvider wraps an EntityProvider with per-call metrics and logging.
// It makes exactly one inner call per fetch.
type instrumentedProvider struct {
	inner   EntityProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
	now     func() time.Time
}

// NewInstrumentedProvider wraps the given provider so every call is timed, counted and logged.
func NewInstrumentedProvider(inner EntityProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) EntityProvider {
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchEntity(ctx context.Context, identifier string) (Payload, error) {
	start := p.now()
	payload, err := p.inner.FetchEntity(ctx, identifier)
	elapsed := p.now().Sub(start)

	outcome := outcomeFor(err)
	p.metrics.RecordUpstreamCall(p.name, outcome, elapsed)

	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "upstream fetch failed",
			slog.String(logging.FieldIdentifier, identifier),
			slog.String("outcome", outcome),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		)
		return nil, err
	}

	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "upstream fetch complete",
		slog.String(logging.FieldIdentifier, identifier),
		slog.Int("bytes", len(payload)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return payload, nil
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrUnavailable):
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeError
	}
}
