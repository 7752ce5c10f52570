package jobs

import (
	"context"
	"log"
	"time"

	"tacticlens/internal/datastore"
)

// Janitor periodically evicts expired datasets from the in-process
// datastore backend. Redis-backed deployments expire keys server-side, so
// the sweep is a no-op there.
type Janitor struct {
	store    *datastore.Store
	interval time.Duration
}

// NewJanitor creates a new datastore janitor.
func NewJanitor(store *datastore.Store, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Janitor{store: store, interval: interval}
}

// Start begins the background sweep loop and blocks until ctx is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	log.Printf("Dataset janitor started (interval: %v)", j.interval)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Dataset janitor stopped")
			return
		case <-ticker.C:
			if evicted := j.store.Sweep(); evicted > 0 {
				log.Printf("Dataset janitor: evicted %d expired datasets", evicted)
			}
		}
	}
}
