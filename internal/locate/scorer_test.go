package locate

import (
	"math"
	"testing"
	"time"
)

func TestScoreDelta(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	p := DefaultParams()

	tests := []struct {
		name string
		item EvidenceItem
		want float64
	}{
		{
			name: "fresh evidence has no decay",
			item: EvidenceItem{Kind: KindScanLatest, RawWeight: 35, Confidence: 0.9, Timestamp: timePtr(now)},
			want: 31.5,
		},
		{
			name: "missing timestamp is not punished",
			item: EvidenceItem{Kind: KindAudit, RawWeight: 50, Confidence: 0.7},
			want: 35,
		},
		{
			name: "half the decay window halves the age contribution",
			item: EvidenceItem{Kind: KindScanLatest, RawWeight: 100, Confidence: 1, Timestamp: timePtr(now.Add(-84 * time.Hour))},
			want: 50,
		},
		{
			name: "very old evidence hits the default floor",
			item: EvidenceItem{Kind: KindScanLatest, RawWeight: 100, Confidence: 1, Timestamp: timePtr(now.Add(-10000 * time.Hour))},
			want: 10,
		},
		{
			name: "erasure evidence floors at 0.2",
			item: EvidenceItem{Kind: KindErasure, RawWeight: 100, Confidence: 1, Timestamp: timePtr(now.Add(-10000 * time.Hour))},
			want: 20,
		},
		{
			name: "future timestamp treated as age zero",
			item: EvidenceItem{Kind: KindScanLatest, RawWeight: 40, Confidence: 1, Timestamp: timePtr(now.Add(3 * time.Hour))},
			want: 40,
		},
		{
			name: "delta clamped to the per-item maximum",
			item: EvidenceItem{Kind: KindConfirmed, RawWeight: 500, Confidence: 1, Timestamp: timePtr(now)},
			want: 100,
		},
		{
			name: "negative delta clamped symmetrically",
			item: EvidenceItem{Kind: KindStageConflict, RawWeight: -500, Confidence: 1},
			want: -100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.scoreDelta(tt.item, now)
			if err != nil {
				t.Fatalf("scoreDelta() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("scoreDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreDeltaNaNIsInvariantViolation(t *testing.T) {
	p := DefaultParams()
	item := EvidenceItem{Kind: KindScanLatest, RawWeight: math.NaN(), Confidence: 1}

	_, err := p.scoreDelta(item, time.Now())
	if err == nil {
		t.Fatal("expected error for NaN weight, got nil")
	}
}

func TestClampBounds(t *testing.T) {
	for _, v := range []float64{-1e9, -100, 0, 100, 1e9} {
		got, err := clamp(v, 1000)
		if err != nil {
			t.Fatalf("clamp(%v) error = %v", v, err)
		}
		if got < -1000 || got > 1000 {
			t.Errorf("clamp(%v) = %v, outside [-1000, 1000]", v, got)
		}
	}
}
