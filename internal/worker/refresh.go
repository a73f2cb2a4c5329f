package worker

import (
	"context"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sirupsen/logrus"
)

// Refresher is what the worker runs on each due tick. Satisfied by
// collector.Collector.
type Refresher interface {
	Refresh(ctx context.Context, season int) error
}

// staleness at which the stored players.json gets refreshed.
const maxArtifactAge = 24 * time.Hour

// ArtifactAge reports how old the stored players.json is.
type ArtifactAge func() time.Duration

// StartRefreshWorker keeps the artifacts fresh while the api process runs.
// Ticks hourly; only acts September through January (the NFL season), and
// only when the stored players.json is older than 24h.
func StartRefreshWorker(ctx context.Context, r Refresher, age ArtifactAge, season int, c clock.Clock, logger *logrus.Logger) {
	go func() {
		ticker := c.Ticker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logger.Info("refresh worker stopped")
				return
			case <-ticker.C:
				if !InSeason(c.Now()) {
					continue
				}
				if age() < maxArtifactAge {
					continue
				}
				logger.Info("refresh worker: artifacts stale, collecting")
				if err := r.Refresh(ctx, season); err != nil {
					logger.WithError(err).Error("refresh worker: collection failed")
				}
			}
		}
	}()
}

// InSeason reports whether t falls in the NFL season window, September
// through January.
func InSeason(t time.Time) bool {
	switch t.Month() {
	case time.September, time.October, time.November, time.December, time.January:
		return true
	default:
		return false
	}
}
