package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/teemow/meetfewer/internal/instrumentation"
	"github.com/teemow/meetfewer/internal/logging"
)

// Engine composes fetching, aggregation, generation and selection into a
// single SuggestSlots call. It holds no request state; one Engine can serve
// many concurrent requests.
type Engine struct {
	source  Source
	logger  *slog.Logger
	metrics *instrumentation.Metrics
}

// NewEngine creates an Engine reading busy events from the given source.
// A nil logger falls back to slog.Default; a nil metrics recorder disables
// metric recording.
func NewEngine(source Source, logger *slog.Logger, metrics *instrumentation.Metrics) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}
	return &Engine{
		source:  source,
		logger:  logger,
		metrics: metrics,
	}
}

// SuggestSlots returns the top-ranked available meeting slots for the given
// request. It either returns a complete result (possibly with zero slots,
// which simply means no availability) or fails with one of the typed errors:
// *InvalidConfigError before any fetch, *SourceUnavailableError when a
// calendar cannot be read, *InvalidEventError on malformed source data.
// Partial results are never returned.
func (e *Engine) SuggestSlots(ctx context.Context, cfg RequestConfig) (*Suggestion, error) {
	started := time.Now()
	log := logging.WithOperation(e.logger, "suggest_slots")

	ctx, span := instrumentation.StartSuggestionSpan(ctx, len(cfg.CalendarIDs), cfg.DurationMinutes, cfg.DaysAhead)
	defer span.End()

	if err := cfg.Validate(); err != nil {
		instrumentation.SetSpanError(span, err)
		e.metrics.RecordSuggestion(ctx, instrumentation.StatusError, 0, 0, time.Since(started))
		return nil, err
	}

	for _, id := range cfg.CalendarIDs {
		log.Debug("fetching calendar", logging.CalendarHash(id))
	}

	sources, err := fetchAll(ctx, e.source, cfg.CalendarIDs, cfg.Start, cfg.lookaheadEnd(), cfg.fetchTimeout())
	if err != nil {
		log.Error("calendar fetch failed", logging.Err(err))
		instrumentation.SetSpanError(span, err)
		e.metrics.RecordSuggestion(ctx, instrumentation.StatusError, 0, 0, time.Since(started))
		return nil, err
	}

	busy, err := Aggregate(sources)
	if err != nil {
		log.Error("aggregation failed", logging.Err(err))
		instrumentation.SetSpanError(span, err)
		e.metrics.RecordSuggestion(ctx, instrumentation.StatusError, 0, 0, time.Since(started))
		return nil, err
	}

	candidates := Generate(busy, cfg)
	top := SelectTop(candidates, cfg.Preferences, cfg.NumSlots)

	log.Info("slots suggested",
		slog.Int("calendars", len(cfg.CalendarIDs)),
		slog.Int("busy_intervals", len(busy)),
		slog.Int("candidates", len(candidates)),
		logging.Slots(len(top)),
		slog.Duration(logging.KeyDuration, time.Since(started)),
	)
	instrumentation.SetSpanSuccess(span)
	e.metrics.RecordSuggestion(ctx, instrumentation.StatusSuccess, len(top), len(candidates), time.Since(started))

	return &Suggestion{
		Slots:           top,
		TotalCandidates: len(candidates),
	}, nil
}
