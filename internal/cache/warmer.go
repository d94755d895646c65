package cache

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/yamada-kensetsu/corporate-backend/config"
)

const warmTimeout = 10 * time.Second

// Source is one cache entry the warmer keeps fresh.
type Source struct {
	Key   string
	Fetch func(ctx context.Context) (any, error)
}

// Warmer re-fetches the homepage views on a cron schedule so those
// keys stay hot after TTL expiry instead of leaking a slow request.
type Warmer struct {
	store   *Store
	spec    string
	sources []Source
	cron    *cron.Cron
}

func NewWarmer(store *Store, spec string, sources []Source) *Warmer {
	return &Warmer{store: store, spec: spec, sources: sources}
}

// Start primes every source once, then refreshes on the schedule.
func (w *Warmer) Start() error {
	w.cron = cron.New()
	if _, err := w.cron.AddFunc(w.spec, w.warm); err != nil {
		return err
	}

	w.warm()
	w.cron.Start()
	config.Log.WithField("spec", w.spec).Info("cache warmer started")
	return nil
}

func (w *Warmer) Stop() {
	if w.cron != nil {
		w.cron.Stop()
	}
}

func (w *Warmer) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
	defer cancel()

	for _, src := range w.sources {
		v, err := src.Fetch(ctx)
		if err != nil {
			config.Log.WithError(err).WithField("key", src.Key).Warn("cache warm fetch failed")
			continue
		}
		if err := w.store.SetJSON(ctx, src.Key, v); err != nil {
			config.Log.WithError(err).WithField("key", src.Key).Warn("cache warm write failed")
		}
	}
}
