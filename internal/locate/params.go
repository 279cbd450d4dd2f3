package locate

import "time"

// Params holds every tunable threshold of the ranking engine. The engine
// never reads environment variables; callers build Params (usually from
// config) and pass it in at construction.
//
// The per-kind weights are empirically tuned values carried over from
// warehouse operations. Treat them as data, not as a formula.
type Params struct {
	MaxEvidenceDelta    float64
	MaxCandidateTotal   float64
	DecayWindowHours    float64
	RecencyWindowHours  float64
	RecencyBoostMax     float64
	TieBreakWindowHours float64
	TieBreakPenalty     float64
	DisplayEvidenceCap  int
	NeighborSampleLimit int
	ScanClusterLimit    int
	AdapterTimeout      time.Duration

	// Weights is the base weight per source kind before decay and
	// confidence multipliers.
	Weights map[SourceKind]float64

	// Confidences is the source-confidence multiplier per kind, 0.0-1.0.
	Confidences map[SourceKind]float64

	// DecayFloors is the minimum decay multiplier per kind. Kinds absent
	// from the map fall back to defaultDecayFloor.
	DecayFloors map[SourceKind]float64
}

const defaultDecayFloor = 0.1

// DefaultParams returns the production defaults.
func DefaultParams() Params {
	return Params{
		MaxEvidenceDelta:    100,
		MaxCandidateTotal:   1000,
		DecayWindowHours:    168,
		RecencyWindowHours:  168,
		RecencyBoostMax:     80,
		TieBreakWindowHours: 48,
		TieBreakPenalty:     50,
		DisplayEvidenceCap:  8,
		NeighborSampleLimit: 20,
		ScanClusterLimit:    10,
		AdapterTimeout:      5 * time.Second,
		Weights: map[SourceKind]float64{
			KindConfirmed:     200,
			KindErasure:       80,
			KindPallet:        70,
			KindScanLatest:    60,
			KindQualityCheck:  60,
			KindAudit:         50,
			KindAssetRecord:   40,
			KindScanCluster:   35,
			KindQueueLocation: 35,
			KindInferred:      8,
			KindInferredStage: 6,
		},
		Confidences: map[SourceKind]float64{
			KindConfirmed:     0.95,
			KindErasure:       0.9,
			KindQualityCheck:  0.85,
			KindPallet:        0.85,
			KindScanLatest:    0.8,
			KindScanCluster:   0.8,
			KindAssetRecord:   0.75,
			KindAudit:         0.7,
			KindQueueLocation: 0.6,
			KindInferred:      0.6,
			KindInferredStage: 0.6,
		},
		DecayFloors: map[SourceKind]float64{
			KindConfirmed:    0.2,
			KindErasure:      0.2,
			KindQualityCheck: 0.2,
		},
	}
}

func (p Params) weight(k SourceKind) float64 {
	return p.Weights[k]
}

func (p Params) confidence(k SourceKind) float64 {
	if c, ok := p.Confidences[k]; ok {
		return c
	}
	return 1.0
}

func (p Params) decayFloor(k SourceKind) float64 {
	if f, ok := p.DecayFloors[k]; ok {
		return f
	}
	return defaultDecayFloor
}
