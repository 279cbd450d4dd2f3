package db

import (
	"context"
	"fmt"
	"time"
)

// CountAssetsWithoutRecentScans counts inventory rows with no scan
// activity inside the window. Feeds the staleness gauge only.
func (d *DB) CountAssetsWithoutRecentScans(ctx context.Context, window time.Duration) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM assets a
		WHERE NOT EXISTS (
			SELECT 1 FROM scan_events s
			WHERE s.asset_ref = a.stock_id AND s.scanned_at > $1
		)
	`, time.Now().Add(-window)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count stale assets: %w", err)
	}
	return count, nil
}
