package jobs

import (
	"context"
	"log"
	"time"

	"stocktrace/internal/db"
	"stocktrace/internal/metrics"
)

// StalenessMonitor periodically counts assets with no recent scan
// activity and exports the number as a gauge. Read-only; it never
// mutates the record stores.
type StalenessMonitor struct {
	db       *db.DB
	interval time.Duration
	window   time.Duration
}

// NewStalenessMonitor creates a new monitor.
func NewStalenessMonitor(database *db.DB, interval, window time.Duration) *StalenessMonitor {
	return &StalenessMonitor{
		db:       database,
		interval: interval,
		window:   window,
	}
}

// Start begins the background monitoring loop.
func (m *StalenessMonitor) Start(ctx context.Context) {
	log.Printf("Staleness monitor started (interval: %v, window: %v)", m.interval, m.window)

	// Run immediately on start
	m.check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Staleness monitor stopped")
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *StalenessMonitor) check(ctx context.Context) {
	qctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	count, err := m.db.CountAssetsWithoutRecentScans(qctx, m.window)
	if err != nil {
		log.Printf("Staleness monitor: failed to count stale assets: %v", err)
		return
	}
	metrics.SetStaleAssets(count)
}
