package locate

import (
	"math"
	"time"
)

// applyStageTieBreak resolves the "where it was processed" versus "where
// it was last seen" conflict. An erasure-stage hypothesis whose last
// evidence sits within the tie-break window of a later quality-check
// signal is stale: the device has already moved on, so the erasure
// candidate is penalized. The deduction is recorded as a synthetic
// negative evidence entry.
func applyStageTieBreak(cands []*Candidate, p Params) {
	qaMostRecent := latestQualityCheck(cands)
	if qaMostRecent == nil {
		return
	}

	for _, c := range cands {
		if !c.hasStage(StageErasure) || c.hasStage(StageQualityCheck) {
			continue
		}
		if c.LastSeen == nil || c.LastSeen.After(*qaMostRecent) {
			continue
		}
		if math.Abs(qaMostRecent.Sub(*c.LastSeen).Hours()) > p.TieBreakWindowHours {
			continue
		}

		total, err := clamp(c.Score-p.TieBreakPenalty, p.MaxCandidateTotal)
		if err != nil {
			continue
		}
		c.Score = total
		c.Evidence = appendSynthetic(c.Evidence, p, EvidenceItem{
			Kind:       KindStageConflict,
			RawWeight:  -p.TieBreakPenalty,
			Confidence: 1,
			Meta:       map[string]string{"reason": "superseded by a later quality-check signal"},
		})
	}
}

// latestQualityCheck returns the newest quality-check evidence timestamp
// across all candidates, or nil when none exists.
func latestQualityCheck(cands []*Candidate) *time.Time {
	var latest *time.Time
	for _, c := range cands {
		for _, it := range c.Evidence {
			if it.Stage != StageQualityCheck || it.Timestamp == nil {
				continue
			}
			if latest == nil || it.Timestamp.After(*latest) {
				t := *it.Timestamp
				latest = &t
			}
		}
	}
	return latest
}
