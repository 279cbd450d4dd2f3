package locate

import (
	"context"
	"fmt"
	"time"

	"stocktrace/internal/models"
)

// errNone is what a store answers when it simply has no row.
var errNone = fmt.Errorf("nothing here: %w", ErrNoRecord)

// fakeSources implements every record-source interface from canned
// values. A nil value with a nil error behaves like a missing row.
type fakeSources struct {
	asset        *models.AssetRecord
	assetErr     error
	resolved     string
	resolveErr   error
	pallet       *models.Pallet
	palletErr    error
	clusters     []models.ScanCluster
	clustersErr  error
	latest       *models.ScanEvent
	latestErr    error
	audit        *models.AuditSubmission
	auditErr     error
	confirmed    *models.ConfirmedLocation
	confirmedErr error
	neighbors    []models.PalletNeighbor
	neighborsErr error
}

func (f *fakeSources) FindAsset(_ context.Context, _ string) (*models.AssetRecord, error) {
	if f.assetErr != nil {
		return nil, f.assetErr
	}
	if f.asset == nil {
		return nil, errNone
	}
	return f.asset, nil
}

func (f *fakeSources) ResolveIdentifier(_ context.Context, idOrSerial string) (string, error) {
	if f.resolveErr != nil {
		return "", f.resolveErr
	}
	if f.resolved == "" {
		return idOrSerial, nil
	}
	return f.resolved, nil
}

func (f *fakeSources) FindPallet(_ context.Context, _ string) (*models.Pallet, error) {
	if f.palletErr != nil {
		return nil, f.palletErr
	}
	if f.pallet == nil {
		return nil, errNone
	}
	return f.pallet, nil
}

func (f *fakeSources) RecentScans(_ context.Context, _ string, _ int) ([]models.ScanCluster, error) {
	return f.clusters, f.clustersErr
}

func (f *fakeSources) LatestScan(_ context.Context, _ string) (*models.ScanEvent, error) {
	if f.latestErr != nil {
		return nil, f.latestErr
	}
	if f.latest == nil {
		return nil, errNone
	}
	return f.latest, nil
}

func (f *fakeSources) LatestAuditSubmission(_ context.Context, _ string) (*models.AuditSubmission, error) {
	if f.auditErr != nil {
		return nil, f.auditErr
	}
	if f.audit == nil {
		return nil, errNone
	}
	return f.audit, nil
}

func (f *fakeSources) LatestConfirmedLocation(_ context.Context, _ string) (*models.ConfirmedLocation, error) {
	if f.confirmedErr != nil {
		return nil, f.confirmedErr
	}
	if f.confirmed == nil {
		return nil, errNone
	}
	return f.confirmed, nil
}

func (f *fakeSources) PalletNeighbors(_ context.Context, _, _ string, _ int) ([]models.PalletNeighbor, error) {
	return f.neighbors, f.neighborsErr
}

// newTestEngine wires a fake into an engine with a frozen clock.
func newTestEngine(f *fakeSources, p Params, now time.Time) *Engine {
	e := New(Sources{
		Assets:        f,
		Pallets:       f,
		Scans:         f,
		Audits:        f,
		Confirmations: f,
		Neighbors:     f,
	}, p)
	e.now = func() time.Time { return now }
	return e
}

func timePtr(t time.Time) *time.Time { return &t }

func strPtr(s string) *string { return &s }
