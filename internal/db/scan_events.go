package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"stocktrace/internal/models"
)

// RecentScans groups the asset's most recent scan rows by location,
// newest group first. An asset with no scans yields an empty slice.
func (d *DB) RecentScans(ctx context.Context, assetRef string, limit int) ([]models.ScanCluster, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT location, MAX(scanned_at) AS last_seen_at, COUNT(*) AS count
		FROM (
			SELECT location, scanned_at
			FROM scan_events
			WHERE asset_ref = $1
			ORDER BY scanned_at DESC
			LIMIT $2
		) recent
		GROUP BY location
		ORDER BY last_seen_at DESC
	`, assetRef, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent scans: %w", err)
	}
	defer rows.Close()

	var clusters []models.ScanCluster
	for rows.Next() {
		var c models.ScanCluster
		if err := rows.Scan(&c.Location, &c.LastSeenAt, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan cluster row: %w", err)
		}
		clusters = append(clusters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scan clusters: %w", err)
	}
	return clusters, nil
}

// LatestScan fetches the single newest scan row for an asset.
func (d *DB) LatestScan(ctx context.Context, assetRef string) (*models.ScanEvent, error) {
	s := &models.ScanEvent{}
	err := d.Pool.QueryRow(ctx, `
		SELECT id, asset_ref, location, scanned_by, scanned_at
		FROM scan_events
		WHERE asset_ref = $1
		ORDER BY scanned_at DESC
		LIMIT 1
	`, assetRef).Scan(&s.ID, &s.AssetRef, &s.Location, &s.ScannedBy, &s.ScannedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoScans
		}
		return nil, fmt.Errorf("failed to fetch latest scan: %w", err)
	}
	return s, nil
}
