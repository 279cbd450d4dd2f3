package db

import (
	"context"
	"fmt"

	"stocktrace/internal/models"
)

// PalletNeighbors samples other assets on the same pallet for
// co-location inference. Each neighbor reports its best known location
// (latest scan, falling back to the inventory row) and whether it shows
// erasure evidence.
func (d *DB) PalletNeighbors(ctx context.Context, palletID, excludeID string, limit int) ([]models.PalletNeighbor, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT a.stock_id,
		       COALESCE(s.location, a.location) AS location,
		       (a.erased_at IS NOT NULL) AS has_erasure_evidence
		FROM assets a
		LEFT JOIN LATERAL (
			SELECT location
			FROM scan_events
			WHERE asset_ref = a.stock_id
			ORDER BY scanned_at DESC
			LIMIT 1
		) s ON true
		WHERE a.pallet_id = $1 AND a.stock_id <> $2
		ORDER BY a.last_update DESC
		LIMIT $3
	`, palletID, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pallet neighbors: %w", err)
	}
	defer rows.Close()

	var neighbors []models.PalletNeighbor
	for rows.Next() {
		var n models.PalletNeighbor
		if err := rows.Scan(&n.StockID, &n.Location, &n.HasErasureEvidence); err != nil {
			return nil, fmt.Errorf("failed to scan neighbor row: %w", err)
		}
		neighbors = append(neighbors, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read neighbors: %w", err)
	}
	return neighbors, nil
}
