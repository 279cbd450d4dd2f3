package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"stocktrace/internal/models"
)

// FindPallet fetches one pallet row.
func (d *DB) FindPallet(ctx context.Context, palletID string) (*models.Pallet, error) {
	p := &models.Pallet{}
	err := d.Pool.QueryRow(ctx, `
		SELECT id, location, destination, status, created_at
		FROM pallets
		WHERE id = $1
	`, palletID).Scan(&p.ID, &p.Location, &p.Destination, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPalletNotFound
		}
		return nil, fmt.Errorf("failed to fetch pallet: %w", err)
	}
	return p, nil
}
