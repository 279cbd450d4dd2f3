package locate

import "time"

// EvidenceItem is one directional signal about an asset's whereabouts.
// Items are immutable once built; the pipeline only reads them.
type EvidenceItem struct {
	Kind       SourceKind        `json:"kind"`
	Stage      Stage             `json:"stage,omitempty"`
	RawWeight  float64           `json:"raw_weight"`
	Timestamp  *time.Time        `json:"timestamp,omitempty"`
	Confidence float64           `json:"confidence"`
	Meta       map[string]string `json:"meta,omitempty"`
}

// Candidate is an aggregated location hypothesis. It lives for the
// duration of one lookup and is never persisted.
type Candidate struct {
	LocationKey string
	Score       float64
	Evidence    []EvidenceItem
	LastSeen    *time.Time

	// retained counts evidence that contributed to the score even when
	// the display cap dropped it from Evidence.
	retained int
}

func (c *Candidate) hasKind(k SourceKind) bool { return evidenceHasKind(c.Evidence, k) }
func (c *Candidate) hasStage(s Stage) bool     { return evidenceHasStage(c.Evidence, s) }

func evidenceHasKind(items []EvidenceItem, k SourceKind) bool {
	for _, it := range items {
		if it.Kind == k {
			return true
		}
	}
	return false
}

func evidenceHasStage(items []EvidenceItem, s Stage) bool {
	for _, it := range items {
		if it.Stage == s {
			return true
		}
	}
	return false
}

// stagePosition returns the furthest known workflow position of the
// evidence set (intake=1 .. sorting/pallet=4) and whether any stage is
// known at all. Pallet evidence counts as the sorting stage.
func stagePosition(items []EvidenceItem) (int, bool) {
	best := 0
	for _, it := range items {
		p := 0
		switch {
		case it.Kind == KindPallet:
			p = 4
		case it.Stage == StageIntake:
			p = 1
		case it.Stage == StageErasure:
			p = 2
		case it.Stage == StageQualityCheck:
			p = 3
		case it.Stage == StageSorting:
			p = 4
		}
		if p > best {
			best = p
		}
	}
	return best, best > 0
}

// ResultFlags surfaces evidence-derived booleans on a ranked result.
type ResultFlags struct {
	IsErasureEvidence bool `json:"is_erasure_evidence"`
	IsConfirmed       bool `json:"is_confirmed"`
	IsInferred        bool `json:"is_inferred"`
	IsMostRecent      bool `json:"is_most_recent"`
}

// RankedResult is one row of the final ranked output.
type RankedResult struct {
	Location      string         `json:"location"`
	Score         int            `json:"score"`
	RawScore      float64        `json:"raw_score"`
	Evidence      []EvidenceItem `json:"evidence"`
	LastSeen      *time.Time     `json:"last_seen"`
	Kind          string         `json:"kind"`
	Rank          int            `json:"rank"`
	Explanation   string         `json:"explanation"`
	AIExplanation string         `json:"ai_explanation"`
	Flags         ResultFlags    `json:"flags"`
}
