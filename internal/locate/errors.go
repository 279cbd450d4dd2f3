package locate

import "errors"

// ErrInvariant marks a programming defect inside the pipeline (a clamp
// producing NaN, the ranker called with nothing to rank). Unlike source
// failures it propagates to the caller.
var ErrInvariant = errors.New("locate: internal invariant violated")

// ErrNoRecord is wrapped by source implementations when a store simply
// has no matching row. Missing rows are expected, yield no evidence and
// are not reported as source failures.
var ErrNoRecord = errors.New("no matching record")
