package locate

import "time"

// aggregator merges scored evidence into per-location candidates. It
// preserves insertion order so that equal-scored candidates later rank
// in the order their sources were consulted.
type aggregator struct {
	params Params
	byKey  map[string]*Candidate
	order  []*Candidate
}

func newAggregator(params Params) *aggregator {
	return &aggregator{
		params: params,
		byKey:  make(map[string]*Candidate),
	}
}

// Merge adds one scored evidence item to the candidate for key. The
// running total is re-clamped after every addition; evidence beyond the
// display cap still scores but is not retained for display.
func (a *aggregator) Merge(key string, it EvidenceItem, delta float64) error {
	c, ok := a.byKey[key]
	if !ok {
		c = &Candidate{LocationKey: key}
		a.byKey[key] = c
		a.order = append(a.order, c)
	}

	total, err := clamp(c.Score+delta, a.params.MaxCandidateTotal)
	if err != nil {
		return err
	}
	c.Score = total
	c.retained++

	if len(c.Evidence) < a.params.DisplayEvidenceCap {
		c.Evidence = append(c.Evidence, it)
	}
	if it.Timestamp != nil {
		c.touch(*it.Timestamp)
	}
	return nil
}

// Candidates returns the merged hypotheses in first-seen order.
func (a *aggregator) Candidates() []*Candidate {
	return a.order
}

// touch advances LastSeen if ts is newer.
func (c *Candidate) touch(ts time.Time) {
	if c.LastSeen == nil || ts.After(*c.LastSeen) {
		t := ts
		c.LastSeen = &t
	}
}
