package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"stocktrace/internal/models"
)

// LatestAuditSubmission fetches the newest operator audit entry for an
// asset.
func (d *DB) LatestAuditSubmission(ctx context.Context, assetRef string) (*models.AuditSubmission, error) {
	a := &models.AuditSubmission{}
	err := d.Pool.QueryRow(ctx, `
		SELECT id, asset_ref, type, actor, log_text, submitted_at
		FROM audit_submissions
		WHERE asset_ref = $1
		ORDER BY submitted_at DESC
		LIMIT 1
	`, assetRef).Scan(&a.ID, &a.AssetRef, &a.Type, &a.Actor, &a.LogText, &a.SubmittedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoAuditSubmission
		}
		return nil, fmt.Errorf("failed to fetch audit submission: %w", err)
	}
	return a, nil
}
