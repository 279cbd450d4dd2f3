package locate

import (
	"context"
	"fmt"
	"time"
)

// DefaultTopN bounds the result list when the caller passes no limit.
const DefaultTopN = 5

// Report is the terminal output of one lookup.
type Report struct {
	AssetID     string          `json:"asset_id"`
	CanonicalID string          `json:"canonical_id"`
	Results     []RankedResult  `json:"results"`
	Degraded    []SourceFailure `json:"degraded_sources,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// Engine runs the evidence-fusion pipeline: collect, score, aggregate,
// recency-boost, tie-break, rank, explain. An Engine is stateless across
// lookups and safe for concurrent use.
type Engine struct {
	sources Sources
	params  Params
	now     func() time.Time
}

// New builds an engine over the given record sources.
func New(sources Sources, params Params) *Engine {
	return &Engine{
		sources: sources,
		params:  params,
		now:     time.Now,
	}
}

// Lookup produces up to topN ranked location hypotheses for an asset
// identifier (stock id or serial). Degraded sources are reported, not
// fatal; an asset with no evidence at all yields an empty result list.
// Only an internal invariant violation returns an error.
func (e *Engine) Lookup(ctx context.Context, assetID string, topN int) (*Report, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}
	now := e.now()

	col := e.collect(ctx, assetID)

	report := &Report{
		AssetID:     assetID,
		CanonicalID: col.CanonicalID,
		Results:     []RankedResult{},
		Degraded:    col.Failures,
		GeneratedAt: now,
	}
	if len(col.Evidence) == 0 {
		return report, nil
	}

	agg := newAggregator(e.params)
	for _, te := range col.Evidence {
		delta, err := e.params.scoreDelta(te.Item, now)
		if err != nil {
			return nil, fmt.Errorf("lookup %q: %w", assetID, err)
		}
		if err := agg.Merge(te.Key, te.Item, delta); err != nil {
			return nil, fmt.Errorf("lookup %q: %w", assetID, err)
		}
	}

	cands := agg.Candidates()
	mostRecent := applyRecencyBoost(cands, e.params, now)
	applyStageTieBreak(cands, e.params)

	results, err := rankAndNormalize(cands, e.params)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", assetID, err)
	}
	explainResults(results, mostRecent, now)

	if len(results) > topN {
		results = results[:topN]
	}
	report.Results = results
	return report, nil
}
