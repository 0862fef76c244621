package service

import (
	"context"
	"time"

	"github.com/rideon-dev/rideon/internal/logger"
)

// SweepStorage is the pruning side of the blacklist store.
type SweepStorage interface {
	DeleteExpiredBlacklistedTokens() (int64, error)
}

// BlacklistSweeper bounds blacklist growth by periodically deleting entries
// whose token expiry has passed.
type BlacklistSweeper struct {
	storage SweepStorage
}

func NewBlacklistSweeper(storage SweepStorage) *BlacklistSweeper {
	return &BlacklistSweeper{storage: storage}
}

// Sweep runs one pruning pass.
func (s *BlacklistSweeper) Sweep() error {
	deleted, err := s.storage.DeleteExpiredBlacklistedTokens()
	if err != nil {
		return err
	}
	if deleted > 0 {
		logger.Log.Info("blacklist sweep completed",
			"component", "blacklist_sweeper",
			"deleted", deleted)
	}
	return nil
}

// StartBackground starts a goroutine that sweeps on an interval until the
// context is cancelled.
func (s *BlacklistSweeper) StartBackground(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	logger.Log.Info("started blacklist sweeper",
		"component", "blacklist_sweeper",
		"interval", interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.Sweep(); err != nil {
					logger.Log.Error("blacklist sweep failed",
						"component", "blacklist_sweeper",
						"error", err)
				}
			case <-ctx.Done():
				logger.Log.Info("blacklist sweeper shutting down gracefully",
					"component", "blacklist_sweeper")
				return
			}
		}
	}()
}
