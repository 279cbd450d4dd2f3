package locate

import (
	"fmt"
	"math"
	"sort"
)

// rankAndNormalize orders candidates by score descending (stable, so
// equal scores keep source-consultation order), rescales to 0-100
// relative to the top score and assigns 1-based ranks.
//
// An empty candidate slice reaching this point is a pipeline defect:
// the engine short-circuits the no-evidence case before ranking.
func rankAndNormalize(cands []*Candidate, p Params) ([]RankedResult, error) {
	if len(cands) == 0 {
		return nil, fmt.Errorf("%w: ranker called with no candidates", ErrInvariant)
	}

	sorted := make([]*Candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	// Any positive top score normalizes to 100. The floor only guards
	// the degenerate all-non-positive case against division blowups.
	maxScore := sorted[0].Score
	if maxScore <= 0 {
		maxScore = 1.0
	}

	results := make([]RankedResult, 0, len(sorted))
	for i, c := range sorted {
		normalized, err := clamp(math.Round(c.Score/maxScore*100), 100)
		if err != nil {
			return nil, err
		}
		if normalized < 0 {
			normalized = 0
		}

		kind := "physical"
		for _, it := range c.Evidence {
			if it.Stage != StageNone {
				kind = "stage"
				break
			}
		}

		results = append(results, RankedResult{
			Location: c.LocationKey,
			Score:    int(normalized),
			RawScore: c.Score,
			Evidence: c.Evidence,
			LastSeen: c.LastSeen,
			Kind:     kind,
			Rank:     i + 1,
			Flags: ResultFlags{
				IsErasureEvidence: c.hasStage(StageErasure),
				IsConfirmed:       c.hasKind(KindConfirmed),
				IsInferred:        c.hasKind(KindInferred) || c.hasKind(KindInferredStage),
			},
		})
	}
	return results, nil
}
