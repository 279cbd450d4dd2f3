package locate

import (
	"context"

	"stocktrace/internal/models"
)

// The collector consumes the record stores through these read-only
// interfaces. The database layer implements all of them; tests supply
// fakes. No write ever originates from this package.

// AssetRecordSource reads inventory rows and resolves loose identifiers
// (stock id or manufacturer serial) to a canonical stock id.
type AssetRecordSource interface {
	FindAsset(ctx context.Context, stockID string) (*models.AssetRecord, error)
	ResolveIdentifier(ctx context.Context, idOrSerial string) (string, error)
}

// PalletSource reads pallet rows.
type PalletSource interface {
	FindPallet(ctx context.Context, palletID string) (*models.Pallet, error)
}

// ScanEventSource reads the scan log.
type ScanEventSource interface {
	RecentScans(ctx context.Context, assetRef string, limit int) ([]models.ScanCluster, error)
	LatestScan(ctx context.Context, assetRef string) (*models.ScanEvent, error)
}

// AuditLogSource reads operator audit submissions.
type AuditLogSource interface {
	LatestAuditSubmission(ctx context.Context, assetRef string) (*models.AuditSubmission, error)
}

// ConfirmedLocationSource reads manual location confirmations.
type ConfirmedLocationSource interface {
	LatestConfirmedLocation(ctx context.Context, assetRef string) (*models.ConfirmedLocation, error)
}

// CoLocationSource samples other assets on the same pallet.
type CoLocationSource interface {
	PalletNeighbors(ctx context.Context, palletID, excludeID string, limit int) ([]models.PalletNeighbor, error)
}

// Sources bundles every record source the engine consults.
type Sources struct {
	Assets        AssetRecordSource
	Pallets       PalletSource
	Scans         ScanEventSource
	Audits        AuditLogSource
	Confirmations ConfirmedLocationSource
	Neighbors     CoLocationSource
}

// SourceFailure records one degraded adapter call. Failures are
// diagnostics, never fatal: the lookup continues without that source.
type SourceFailure struct {
	Source string `json:"source"`
	Err    string `json:"error"`
}
