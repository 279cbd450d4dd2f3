package locate

import (
	"testing"
	"time"
)

func TestAggregatorMerge(t *testing.T) {
	p := DefaultParams()
	agg := newAggregator(p)

	ts1 := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	ts2 := ts1.Add(5 * time.Hour)

	if err := agg.Merge("Bay 3", EvidenceItem{Kind: KindScanCluster, Timestamp: &ts1}, 20); err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if err := agg.Merge("Bay 3", EvidenceItem{Kind: KindScanLatest, Timestamp: &ts2}, 30); err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if err := agg.Merge("Dock 4", EvidenceItem{Kind: KindPallet}, 50); err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	cands := agg.Candidates()
	if len(cands) != 2 {
		t.Fatalf("got %d candidates, want 2", len(cands))
	}

	bay := cands[0]
	if bay.LocationKey != "Bay 3" {
		t.Errorf("first candidate = %q, want Bay 3 (insertion order)", bay.LocationKey)
	}
	if bay.Score != 50 {
		t.Errorf("Bay 3 score = %v, want 50", bay.Score)
	}
	if len(bay.Evidence) != 2 {
		t.Errorf("Bay 3 retained %d evidence items, want 2", len(bay.Evidence))
	}
	if bay.LastSeen == nil || !bay.LastSeen.Equal(ts2) {
		t.Errorf("Bay 3 lastSeen = %v, want %v", bay.LastSeen, ts2)
	}
}

func TestAggregatorClampsRunningTotal(t *testing.T) {
	p := DefaultParams()
	agg := newAggregator(p)

	for i := 0; i < 50; i++ {
		if err := agg.Merge("Bay 3", EvidenceItem{Kind: KindScanCluster}, p.MaxEvidenceDelta); err != nil {
			t.Fatalf("Merge() error = %v", err)
		}
	}

	c := agg.Candidates()[0]
	if c.Score != p.MaxCandidateTotal {
		t.Errorf("score = %v, want clamped to %v", c.Score, p.MaxCandidateTotal)
	}
}

func TestAggregatorDisplayCap(t *testing.T) {
	p := DefaultParams()
	agg := newAggregator(p)

	for i := 0; i < p.DisplayEvidenceCap+5; i++ {
		if err := agg.Merge("Bay 3", EvidenceItem{Kind: KindScanCluster}, 1); err != nil {
			t.Fatalf("Merge() error = %v", err)
		}
	}

	c := agg.Candidates()[0]
	if len(c.Evidence) != p.DisplayEvidenceCap {
		t.Errorf("retained %d evidence items, want cap %d", len(c.Evidence), p.DisplayEvidenceCap)
	}
	// Overflow still contributes to the score.
	if want := float64(p.DisplayEvidenceCap + 5); c.Score != want {
		t.Errorf("score = %v, want %v", c.Score, want)
	}
}

func TestAggregatorNilTimestampDoesNotTouchLastSeen(t *testing.T) {
	p := DefaultParams()
	agg := newAggregator(p)

	ts := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	if err := agg.Merge("Bay 3", EvidenceItem{Kind: KindScanLatest, Timestamp: &ts}, 10); err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if err := agg.Merge("Bay 3", EvidenceItem{Kind: KindAudit}, 10); err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	c := agg.Candidates()[0]
	if c.LastSeen == nil || !c.LastSeen.Equal(ts) {
		t.Errorf("lastSeen = %v, want unchanged %v", c.LastSeen, ts)
	}
}
