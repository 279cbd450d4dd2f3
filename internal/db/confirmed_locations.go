package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"stocktrace/internal/models"
)

// LatestConfirmedLocation fetches the newest manual confirmation for an
// asset. Confirmations are written by the human-confirmation workflow;
// this service only reads them.
func (d *DB) LatestConfirmedLocation(ctx context.Context, assetRef string) (*models.ConfirmedLocation, error) {
	c := &models.ConfirmedLocation{}
	err := d.Pool.QueryRow(ctx, `
		SELECT id, asset_ref, location, confirmed_by, note, confirmed_at
		FROM confirmed_locations
		WHERE asset_ref = $1
		ORDER BY confirmed_at DESC
		LIMIT 1
	`, assetRef).Scan(&c.ID, &c.AssetRef, &c.Location, &c.ConfirmedBy, &c.Note, &c.ConfirmedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoConfirmation
		}
		return nil, fmt.Errorf("failed to fetch confirmed location: %w", err)
	}
	return c, nil
}
