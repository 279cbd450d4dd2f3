package locate

import (
	"fmt"
	"math"
	"time"
)

// scoreDelta converts one evidence item into its clamped score
// contribution:
//
//	decay = max(floor, 1 - min(ageHours/decayWindow, 0.9))
//	delta = clamp(rawWeight * decay * confidence, ±MaxEvidenceDelta)
//
// Evidence without a usable timestamp gets decay 1.0: unknown age is
// not punished.
func (p Params) scoreDelta(it EvidenceItem, now time.Time) (float64, error) {
	decay := 1.0
	if it.Timestamp != nil {
		age := now.Sub(*it.Timestamp).Hours()
		if age < 0 {
			age = 0
		}
		decay = math.Max(p.decayFloor(it.Kind), 1-math.Min(age/p.DecayWindowHours, 0.9))
	}

	delta, err := clamp(it.RawWeight*decay*it.Confidence, p.MaxEvidenceDelta)
	if err != nil {
		return 0, fmt.Errorf("scoring %s evidence: %w", it.Kind, err)
	}
	return delta, nil
}

// clamp bounds v to [-limit, limit]. NaN can only come from a defect in
// weight configuration or arithmetic, so it is a hard error.
func clamp(v, limit float64) (float64, error) {
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%w: clamp produced NaN", ErrInvariant)
	}
	if v > limit {
		return limit, nil
	}
	if v < -limit {
		return -limit, nil
	}
	return v, nil
}
