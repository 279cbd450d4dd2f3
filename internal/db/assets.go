package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"stocktrace/internal/models"
)

// FindAsset fetches the inventory row for a canonical stock id.
func (d *DB) FindAsset(ctx context.Context, stockID string) (*models.AssetRecord, error) {
	a := &models.AssetRecord{}
	err := d.Pool.QueryRow(ctx, `
		SELECT id, stock_id, serial, pallet_id, location, queue_location,
		       erased_at, qc_passed_at, last_update
		FROM assets
		WHERE stock_id = $1
	`, stockID).Scan(&a.ID, &a.StockID, &a.Serial, &a.PalletID, &a.Location,
		&a.QueueLocation, &a.ErasedAt, &a.QCPassedAt, &a.LastUpdate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to fetch asset: %w", err)
	}
	return a, nil
}

// ResolveIdentifier maps a loose identifier (stock id or manufacturer
// serial) to the canonical stock id, probing the inventory first and
// the erasure reports second.
func (d *DB) ResolveIdentifier(ctx context.Context, idOrSerial string) (string, error) {
	var stockID string
	err := d.Pool.QueryRow(ctx, `
		SELECT stock_id FROM assets
		WHERE stock_id = $1 OR serial = $1
		LIMIT 1
	`, idOrSerial).Scan(&stockID)
	if err == nil {
		return stockID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("failed to resolve identifier: %w", err)
	}

	err = d.Pool.QueryRow(ctx, `
		SELECT stock_id FROM erasure_reports
		WHERE serial = $1
		ORDER BY erased_at DESC
		LIMIT 1
	`, idOrSerial).Scan(&stockID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrUnresolvedIdentifier
		}
		return "", fmt.Errorf("failed to resolve identifier via erasure reports: %w", err)
	}
	return stockID, nil
}
