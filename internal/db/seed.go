package db

import (
	"context"
	"fmt"
	"time"
)

// SeedDevData inserts a small warehouse snapshot for development.
// Skips rows that already exist.
func (d *DB) SeedDevData(ctx context.Context) error {
	now := time.Now()

	_, err := d.Pool.Exec(ctx, `
		INSERT INTO pallets (id, location, destination, status, created_at)
		VALUES ('P-1042', 'Dock 4', 'Rotterdam DC', 'open', $1)
		ON CONFLICT (id) DO NOTHING
	`, now.Add(-36*time.Hour))
	if err != nil {
		return fmt.Errorf("failed to seed pallets: %w", err)
	}

	assets := []struct {
		stockID, serial string
		location        string
		erasedAgo       time.Duration
	}{
		{"ST-100001", "SN-AA11", "Bay 3", 20 * time.Hour},
		{"ST-100002", "SN-BB22", "Bay 3", 22 * time.Hour},
		{"ST-100003", "SN-CC33", "Bay 3", 0},
		{"ST-100004", "SN-DD44", "Dock 4", 30 * time.Hour},
	}
	for _, a := range assets {
		var erasedAt *time.Time
		if a.erasedAgo > 0 {
			t := now.Add(-a.erasedAgo)
			erasedAt = &t
		}
		_, err := d.Pool.Exec(ctx, `
			INSERT INTO assets (stock_id, serial, pallet_id, location, erased_at, last_update)
			VALUES ($1, $2, 'P-1042', $3, $4, $5)
			ON CONFLICT (stock_id) DO NOTHING
		`, a.stockID, a.serial, a.location, erasedAt, now.Add(-12*time.Hour))
		if err != nil {
			return fmt.Errorf("failed to seed asset %s: %w", a.stockID, err)
		}
	}

	_, err = d.Pool.Exec(ctx, `
		INSERT INTO scan_events (asset_ref, location, scanned_by, scanned_at)
		SELECT 'ST-100001', 'Bay 3', 'mlopez', $1
		WHERE NOT EXISTS (SELECT 1 FROM scan_events WHERE asset_ref = 'ST-100001')
	`, now.Add(-3*time.Hour))
	if err != nil {
		return fmt.Errorf("failed to seed scan events: %w", err)
	}

	return nil
}
