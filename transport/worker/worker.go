package worker

import (
	"context"
	"fmt"

	"tableside/infras/otel"
	"tableside/shared"
	"tableside/shared/cache"
	"tableside/shared/constant"
	"tableside/shared/event"

	"github.com/rs/zerolog/log"
)

// Worker consumes reservation events, writes one audit line per event and drops
// the cached views the event made stale.
type Worker struct {
	bus   event.Bus
	cache cache.RedisCache
	otel  otel.Otel
}

func New(bus event.Bus, cache cache.RedisCache, otel otel.Otel) *Worker {
	return &Worker{
		bus:   bus,
		cache: cache,
		otel:  otel,
	}
}

// Run blocks until ctx is done.
func (w *Worker) Run(ctx context.Context) {
	log.Info().Msg("Worker consuming reservation events.")

	w.bus.Subscribe(ctx, w.Handle)
}

func (w *Worker) Handle(ctx context.Context, evt event.Event) (err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".worker.Handle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"event.id":       evt.ID,
		"event.type":     string(evt.Type),
		"reservation.id": evt.ReservationID,
	})

	entry := log.Info().
		Str("event_id", evt.ID).
		Str("type", string(evt.Type)).
		Str("reservation_id", evt.ReservationID).
		Int("status", evt.Status).
		Str("day", evt.Day).
		Str("actor", evt.Actor).
		Time("occurred_at", evt.OccurredAt)

	if evt.TableID != nil {
		entry = entry.Int("table_id", *evt.TableID)
	}

	entry.Msg("audit")

	keys := []string{shared.BuildCacheKey(constant.CacheReservationGet, evt.ReservationID)}
	if evt.Day != constant.Empty {
		keys = append(keys, shared.BuildCacheKey(constant.CacheScheduleGet, evt.Day))
	}

	for _, key := range keys {
		if err = w.cache.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to invalidate %s: %w", key, err)
		}
	}

	return nil
}

func (w *Worker) Close() error {
	return w.bus.Close() //nolint:wrapcheck
}
