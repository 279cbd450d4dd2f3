package locate

import (
	"math"
	"time"
)

// applyRecencyBoost finds the single most recent meaningful signal
// across all candidates and boosts the candidates holding it or sitting
// close behind it. The boost decays with the evidence's age, so a
// "freshest" signal that is itself older than the window earns nothing.
// Every boost is recorded as a synthetic evidence entry; the pipeline
// never changes a score silently.
//
// Returns the global most-recent timestamp for the explanation step.
func applyRecencyBoost(cands []*Candidate, p Params, now time.Time) *time.Time {
	var mostRecent *time.Time
	for _, c := range cands {
		for _, it := range c.Evidence {
			if !it.Kind.meaningful() || it.Timestamp == nil {
				continue
			}
			if mostRecent == nil || it.Timestamp.After(*mostRecent) {
				t := *it.Timestamp
				mostRecent = &t
			}
		}
	}
	if mostRecent == nil {
		return nil
	}

	for _, c := range cands {
		if c.LastSeen == nil {
			continue
		}
		if mostRecent.Sub(*c.LastSeen).Hours() > p.RecencyWindowHours {
			continue
		}

		ageHours := now.Sub(*c.LastSeen).Hours()
		boost := math.Round(p.RecencyBoostMax * math.Max(0, 1-ageHours/p.RecencyWindowHours))
		if boost <= 0 {
			continue
		}

		total, err := clamp(c.Score+boost, p.MaxCandidateTotal)
		if err != nil {
			// boost arithmetic cannot produce NaN from clamped inputs
			continue
		}
		c.Score = total
		c.Evidence = appendSynthetic(c.Evidence, p, EvidenceItem{
			Kind:       KindRecencyBoost,
			RawWeight:  boost,
			Confidence: 1,
			Meta:       map[string]string{"reason": "most recent meaningful signal"},
		})
	}
	return mostRecent
}

// appendSynthetic appends a pipeline-generated entry, letting it
// displace headroom under the display cap but never real evidence.
func appendSynthetic(evidence []EvidenceItem, p Params, it EvidenceItem) []EvidenceItem {
	if len(evidence) >= p.DisplayEvidenceCap {
		return evidence
	}
	return append(evidence, it)
}
