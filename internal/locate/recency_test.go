package locate

import (
	"testing"
	"time"
)

func TestRecencyBoostFavorsFreshestSignal(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	p := DefaultParams()

	fresh := now.Add(-1 * time.Hour)
	stale := now.Add(-100 * time.Hour)

	cands := []*Candidate{
		{
			LocationKey: "Bay 3",
			Score:       50,
			Evidence:    []EvidenceItem{{Kind: KindScanLatest, Timestamp: &fresh}},
			LastSeen:    &fresh,
		},
		{
			LocationKey: "Dock 4",
			Score:       50,
			Evidence:    []EvidenceItem{{Kind: KindPallet, Timestamp: &stale}},
			LastSeen:    &stale,
		},
	}

	mostRecent := applyRecencyBoost(cands, p, now)
	if mostRecent == nil || !mostRecent.Equal(fresh) {
		t.Fatalf("globalMostRecent = %v, want %v", mostRecent, fresh)
	}

	if cands[0].Score <= cands[1].Score {
		t.Errorf("fresh candidate (%v) should outscore stale one (%v)", cands[0].Score, cands[1].Score)
	}

	// The boost is visible, not silent.
	if !cands[0].hasKind(KindRecencyBoost) {
		t.Error("fresh candidate missing synthetic recency-boost evidence")
	}
}

func TestRecencyBoostZeroOutsideWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	p := DefaultParams()

	old := now.Add(-200 * time.Hour)
	cands := []*Candidate{
		{
			LocationKey: "Bay 3",
			Score:       50,
			Evidence:    []EvidenceItem{{Kind: KindScanLatest, Timestamp: &old}},
			LastSeen:    &old,
		},
	}

	applyRecencyBoost(cands, p, now)

	if cands[0].Score != 50 {
		t.Errorf("score = %v, want unchanged 50 (evidence outside the recency window)", cands[0].Score)
	}
	if cands[0].hasKind(KindRecencyBoost) {
		t.Error("candidate outside the window should not receive a boost entry")
	}
}

func TestRecencyIgnoresNonMeaningfulKinds(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	p := DefaultParams()

	metaUpdate := now.Add(-1 * time.Hour)
	scan := now.Add(-50 * time.Hour)

	cands := []*Candidate{
		{
			LocationKey: "Rack R2",
			Score:       10,
			Evidence:    []EvidenceItem{{Kind: KindQueueLocation, Timestamp: &metaUpdate}},
			LastSeen:    &metaUpdate,
		},
		{
			LocationKey: "Bay 3",
			Score:       10,
			Evidence:    []EvidenceItem{{Kind: KindScanLatest, Timestamp: &scan}},
			LastSeen:    &scan,
		},
	}

	mostRecent := applyRecencyBoost(cands, p, now)
	if mostRecent == nil || !mostRecent.Equal(scan) {
		t.Fatalf("globalMostRecent = %v, want the scan at %v (queue updates are not meaningful)", mostRecent, scan)
	}
}

func TestStageTieBreakPenalizesStaleErasure(t *testing.T) {
	p := DefaultParams()
	erasedAt := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	qcAt := erasedAt.Add(10 * time.Hour)

	cands := []*Candidate{
		{
			LocationKey: keyStageErased,
			Score:       80,
			Evidence:    []EvidenceItem{{Kind: KindErasure, Stage: StageErasure, Timestamp: &erasedAt}},
			LastSeen:    &erasedAt,
		},
		{
			LocationKey: keyStageQC,
			Score:       60,
			Evidence:    []EvidenceItem{{Kind: KindQualityCheck, Stage: StageQualityCheck, Timestamp: &qcAt}},
			LastSeen:    &qcAt,
		},
	}

	applyStageTieBreak(cands, p)

	if want := 80 - p.TieBreakPenalty; cands[0].Score != want {
		t.Errorf("erasure candidate score = %v, want %v (penalized)", cands[0].Score, want)
	}
	if cands[1].Score != 60 {
		t.Errorf("quality-check candidate score = %v, want untouched 60", cands[1].Score)
	}
	if !cands[0].hasKind(KindStageConflict) {
		t.Error("penalized candidate missing synthetic stage-conflict evidence")
	}
}

func TestStageTieBreakOutsideWindow(t *testing.T) {
	p := DefaultParams()
	erasedAt := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	qcAt := erasedAt.Add(72 * time.Hour) // beyond the 48h window

	cands := []*Candidate{
		{
			LocationKey: keyStageErased,
			Score:       80,
			Evidence:    []EvidenceItem{{Kind: KindErasure, Stage: StageErasure, Timestamp: &erasedAt}},
			LastSeen:    &erasedAt,
		},
		{
			LocationKey: keyStageQC,
			Score:       60,
			Evidence:    []EvidenceItem{{Kind: KindQualityCheck, Stage: StageQualityCheck, Timestamp: &qcAt}},
			LastSeen:    &qcAt,
		},
	}

	applyStageTieBreak(cands, p)

	if cands[0].Score != 80 {
		t.Errorf("erasure candidate score = %v, want untouched 80 (outside tie-break window)", cands[0].Score)
	}
}

func TestStageTieBreakNoQualityCheckEvidence(t *testing.T) {
	p := DefaultParams()
	erasedAt := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	cands := []*Candidate{
		{
			LocationKey: keyStageErased,
			Score:       80,
			Evidence:    []EvidenceItem{{Kind: KindErasure, Stage: StageErasure, Timestamp: &erasedAt}},
			LastSeen:    &erasedAt,
		},
	}

	applyStageTieBreak(cands, p)

	if cands[0].Score != 80 {
		t.Errorf("score = %v, want untouched 80 (no quality-check signal exists)", cands[0].Score)
	}
}
