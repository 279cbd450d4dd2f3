package locate

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"stocktrace/internal/models"
)

// Location keys for workflow-stage hypotheses. Stage candidates compete
// with physical ones: "it is at the erasure bench" is a hypothesis like
// any other.
const (
	keyStageIntake  = "Stage: Intake"
	keyStageErased  = "Stage: Erased"
	keyStageQC      = "Stage: Quality check"
	keyStageSorting = "Stage: Sorting"
)

// taggedEvidence pairs an evidence item with the location key it votes for.
type taggedEvidence struct {
	Key  string
	Item EvidenceItem
}

// collection is everything one collector pass produced.
type collection struct {
	CanonicalID string
	Evidence    []taggedEvidence
	Failures    []SourceFailure
}

// collect resolves the identifier and queries every record source. The
// independent reads run concurrently, each under its own timeout; a
// failed or timed-out source degrades to zero evidence and a diagnostic
// entry. Evidence is assembled in a fixed source order regardless of
// which query finished first, so ties later rank deterministically.
func (e *Engine) collect(ctx context.Context, rawID string) collection {
	col := collection{CanonicalID: rawID}

	id, fail := e.resolveIdentifier(ctx, rawID)
	if fail != nil {
		col.Failures = append(col.Failures, *fail)
	}
	col.CanonicalID = id

	asset, fail := e.findAsset(ctx, id)
	if fail != nil {
		col.Failures = append(col.Failures, *fail)
	}

	var palletID string
	if asset != nil && asset.PalletID != nil {
		palletID = *asset.PalletID
	}

	var (
		pallet    *models.Pallet
		clusters  []models.ScanCluster
		latest    *models.ScanEvent
		audit     *models.AuditSubmission
		confirmed *models.ConfirmedLocation
		neighbors []models.PalletNeighbor
		fails     [6]*SourceFailure
	)

	var g errgroup.Group
	if palletID != "" {
		g.Go(func() error {
			qctx, cancel := context.WithTimeout(ctx, e.params.AdapterTimeout)
			defer cancel()
			p, err := e.sources.Pallets.FindPallet(qctx, palletID)
			pallet, fails[0] = p, failureFor("pallet", err)
			return nil
		})
		g.Go(func() error {
			qctx, cancel := context.WithTimeout(ctx, e.params.AdapterTimeout)
			defer cancel()
			n, err := e.sources.Neighbors.PalletNeighbors(qctx, palletID, id, e.params.NeighborSampleLimit)
			neighbors, fails[5] = n, failureFor("neighbors", err)
			return nil
		})
	}
	g.Go(func() error {
		qctx, cancel := context.WithTimeout(ctx, e.params.AdapterTimeout)
		defer cancel()
		c, err := e.sources.Scans.RecentScans(qctx, id, e.params.ScanClusterLimit)
		clusters, fails[1] = c, failureFor("scan_clusters", err)
		return nil
	})
	g.Go(func() error {
		qctx, cancel := context.WithTimeout(ctx, e.params.AdapterTimeout)
		defer cancel()
		s, err := e.sources.Scans.LatestScan(qctx, id)
		latest, fails[2] = s, failureFor("scan_latest", err)
		return nil
	})
	g.Go(func() error {
		qctx, cancel := context.WithTimeout(ctx, e.params.AdapterTimeout)
		defer cancel()
		a, err := e.sources.Audits.LatestAuditSubmission(qctx, id)
		audit, fails[3] = a, failureFor("audit", err)
		return nil
	})
	g.Go(func() error {
		qctx, cancel := context.WithTimeout(ctx, e.params.AdapterTimeout)
		defer cancel()
		c, err := e.sources.Confirmations.LatestConfirmedLocation(qctx, id)
		confirmed, fails[4] = c, failureFor("confirmed", err)
		return nil
	})
	g.Wait() //nolint:errcheck // goroutines only record failures

	for _, f := range fails {
		if f != nil {
			col.Failures = append(col.Failures, *f)
		}
	}

	// Fixed assembly order: asset record, pallet, scan clusters, latest
	// scan, audit, confirmation, co-location inference.
	if asset != nil {
		col.Evidence = append(col.Evidence, e.assetEvidence(asset)...)
	}
	if pallet != nil {
		col.Evidence = append(col.Evidence, e.palletEvidence(pallet))
	}
	for _, c := range clusters {
		col.Evidence = append(col.Evidence, e.clusterEvidence(c))
	}
	if latest != nil {
		col.Evidence = append(col.Evidence, e.latestScanEvidence(latest))
	}
	if audit != nil {
		if te, ok := e.auditEvidence(audit); ok {
			col.Evidence = append(col.Evidence, te)
		}
	}
	if confirmed != nil {
		col.Evidence = append(col.Evidence, e.confirmedEvidence(confirmed))
	}
	col.Evidence = append(col.Evidence, e.inferFromNeighbors(neighbors)...)

	return col
}

// resolveIdentifier maps a serial or stock id to the canonical stock id,
// keeping the raw identifier when resolution finds nothing.
func (e *Engine) resolveIdentifier(ctx context.Context, rawID string) (string, *SourceFailure) {
	qctx, cancel := context.WithTimeout(ctx, e.params.AdapterTimeout)
	defer cancel()

	id, err := e.sources.Assets.ResolveIdentifier(qctx, rawID)
	if err != nil {
		return rawID, failureFor("resolve", err)
	}
	return id, nil
}

func (e *Engine) findAsset(ctx context.Context, id string) (*models.AssetRecord, *SourceFailure) {
	qctx, cancel := context.WithTimeout(ctx, e.params.AdapterTimeout)
	defer cancel()

	asset, err := e.sources.Assets.FindAsset(qctx, id)
	if err != nil {
		return nil, failureFor("asset_record", err)
	}
	return asset, nil
}

// failureFor converts an adapter error into a diagnostic. A missing row
// is not a failure: the store answered, there was just nothing there.
func failureFor(source string, err error) *SourceFailure {
	if err == nil || errors.Is(err, ErrNoRecord) {
		return nil
	}
	return &SourceFailure{Source: source, Err: err.Error()}
}

func (e *Engine) newItem(kind SourceKind, stage Stage, meta map[string]string) EvidenceItem {
	return EvidenceItem{
		Kind:       kind,
		Stage:      stage,
		RawWeight:  e.params.weight(kind),
		Confidence: e.params.confidence(kind),
		Meta:       meta,
	}
}

func (e *Engine) assetEvidence(a *models.AssetRecord) []taggedEvidence {
	var out []taggedEvidence
	ts := a.LastUpdate

	if a.Location != nil && *a.Location != "" {
		it := e.newItem(KindAssetRecord, StageNone, map[string]string{"stock_id": a.StockID})
		it.Timestamp = &ts
		out = append(out, taggedEvidence{Key: *a.Location, Item: it})
	}
	if a.QueueLocation != nil && *a.QueueLocation != "" {
		it := e.newItem(KindQueueLocation, StageNone, map[string]string{"stock_id": a.StockID})
		it.Timestamp = &ts
		out = append(out, taggedEvidence{Key: *a.QueueLocation, Item: it})
	}
	if a.ErasedAt != nil {
		it := e.newItem(KindErasure, StageErasure, map[string]string{"stock_id": a.StockID})
		it.Timestamp = a.ErasedAt
		out = append(out, taggedEvidence{Key: keyStageErased, Item: it})
	}
	if a.QCPassedAt != nil {
		it := e.newItem(KindQualityCheck, StageQualityCheck, map[string]string{"stock_id": a.StockID})
		it.Timestamp = a.QCPassedAt
		out = append(out, taggedEvidence{Key: keyStageQC, Item: it})
	}
	return out
}

func (e *Engine) palletEvidence(p *models.Pallet) taggedEvidence {
	place := ""
	switch {
	case p.Location != nil && *p.Location != "":
		place = *p.Location
	case p.Destination != nil && *p.Destination != "":
		place = *p.Destination
	}

	key := fmt.Sprintf("Pallet %s", p.ID)
	if place != "" {
		key = fmt.Sprintf("Pallet %s (%s)", p.ID, place)
	}

	meta := map[string]string{"pallet_id": p.ID, "status": p.Status}
	if place != "" {
		meta["place"] = place
	}
	it := e.newItem(KindPallet, StageNone, meta)
	ts := p.CreatedAt
	it.Timestamp = &ts
	return taggedEvidence{Key: key, Item: it}
}

func (e *Engine) clusterEvidence(c models.ScanCluster) taggedEvidence {
	it := e.newItem(KindScanCluster, StageNone, map[string]string{"count": strconv.Itoa(c.Count)})
	ts := c.LastSeenAt
	it.Timestamp = &ts
	return taggedEvidence{Key: c.Location, Item: it}
}

func (e *Engine) latestScanEvidence(s *models.ScanEvent) taggedEvidence {
	it := e.newItem(KindScanLatest, StageNone, map[string]string{"actor": s.ScannedBy})
	ts := s.ScannedAt
	it.Timestamp = &ts
	return taggedEvidence{Key: s.Location, Item: it}
}

// auditEvidence maps an audit submission onto a stage hypothesis. Audit
// types outside the workflow carry no location signal and are skipped.
func (e *Engine) auditEvidence(a *models.AuditSubmission) (taggedEvidence, bool) {
	stage := stageForAuditType(a.Type)
	var key string
	switch stage {
	case StageIntake:
		key = keyStageIntake
	case StageErasure:
		key = keyStageErased
	case StageQualityCheck:
		key = keyStageQC
	case StageSorting:
		key = keyStageSorting
	default:
		return taggedEvidence{}, false
	}

	log := a.LogText
	if len(log) > 140 {
		log = log[:140]
	}
	it := e.newItem(KindAudit, stage, map[string]string{
		"type":  a.Type,
		"actor": a.Actor,
		"log":   log,
	})
	ts := a.SubmittedAt
	it.Timestamp = &ts
	return taggedEvidence{Key: key, Item: it}, true
}

func (e *Engine) confirmedEvidence(c *models.ConfirmedLocation) taggedEvidence {
	meta := map[string]string{"actor": c.ConfirmedBy}
	if c.Note != "" {
		meta["note"] = c.Note
	}
	it := e.newItem(KindConfirmed, StageNone, meta)
	ts := c.ConfirmedAt
	it.Timestamp = &ts
	return taggedEvidence{Key: "Confirmed: " + c.Location, Item: it}
}

// inferFromNeighbors applies the co-location heuristic: a location seen
// on two or more pallet mates is weak evidence this asset is there too,
// and three or more erased mates hint the whole pallet passed erasure.
func (e *Engine) inferFromNeighbors(neighbors []models.PalletNeighbor) []taggedEvidence {
	if len(neighbors) == 0 {
		return nil
	}

	counts := make(map[string]int, len(neighbors))
	var order []string
	erased := 0
	for _, n := range neighbors {
		if n.HasErasureEvidence {
			erased++
		}
		if n.Location == nil || *n.Location == "" {
			continue
		}
		if counts[*n.Location] == 0 {
			order = append(order, *n.Location)
		}
		counts[*n.Location]++
	}

	var out []taggedEvidence
	for _, loc := range order {
		n := counts[loc]
		if n < 2 {
			continue
		}
		it := e.newItem(KindInferred, StageNone, map[string]string{
			"neighbors": strconv.Itoa(n),
		})
		key := fmt.Sprintf("Inferred: %s (from %d co-located devices)", loc, n)
		out = append(out, taggedEvidence{Key: key, Item: it})
	}

	if erased >= 3 {
		it := e.newItem(KindInferredStage, StageErasure, map[string]string{
			"neighbors": strconv.Itoa(erased),
		})
		key := fmt.Sprintf("Inferred: erasure stage (%d co-located devices erased)", erased)
		out = append(out, taggedEvidence{Key: key, Item: it})
	}
	return out
}
