package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/printworks/storefront-server-go/internal/repository"
)

// CleanupJob periodically removes abandoned cart rows. Sessions are
// anonymous and never expire server-side, so carts that stopped being
// touched are the only garbage to collect.
type CleanupJob struct {
	cartRepo  repository.CartItemRepository
	retention time.Duration
	interval  time.Duration
	done      chan struct{}
}

func NewCleanupJob(cartRepo repository.CartItemRepository, retention, interval time.Duration) *CleanupJob {
	return &CleanupJob{
		cartRepo:  cartRepo,
		retention: retention,
		interval:  interval,
		done:      make(chan struct{}),
	}
}

func (j *CleanupJob) Start() {
	go j.run()
	log.Info().Dur("interval", j.interval).Dur("retention", j.retention).Msg("cart cleanup job started")
}

func (j *CleanupJob) Stop() {
	close(j.done)
	log.Info().Msg("cart cleanup job stopped")
}

func (j *CleanupJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.cleanup()

	for {
		select {
		case <-j.done:
			return
		case <-ticker.C:
			j.cleanup()
		}
	}
}

func (j *CleanupJob) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-j.retention)
	deleted, err := j.cartRepo.DeleteStale(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("cleanup failed for abandoned cart items")
		return
	}

	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("cleaned up abandoned cart items")
	}
}
