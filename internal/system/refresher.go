package system

import (
	"context"
	"time"

	"github.com/rileyhilliard/systop/internal/logger"
)

// Refresher periodically samples the system and applies each snapshot to
// the Store. It is the Store's only writer.
type Refresher struct {
	sampler  Sampler
	store    *Store
	interval time.Duration
	log      logger.Logger
}

// NewRefresher wires a sampler to a store at a fixed refresh interval.
func NewRefresher(sampler Sampler, store *Store, interval time.Duration) *Refresher {
	return &Refresher{
		sampler:  sampler,
		store:    store,
		interval: interval,
		log:      logger.Default(),
	}
}

// Run samples on a fixed ticker until ctx is cancelled. A failed sample
// is logged and skipped; the store keeps its previous state and the next
// tick retries. The interval does not stretch or back off on failure.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap, err := r.sampler.Sample(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				r.log.Warn("sample failed, keeping previous snapshot: %v", err)
				continue
			}
			r.store.Apply(snap)
		}
	}
}
