package db

import (
	"fmt"

	"stocktrace/internal/locate"
)

// Record-source sentinels. Each wraps locate.ErrNoRecord so the lookup
// engine can tell "the store has no row" apart from a real failure.
var (
	ErrAssetNotFound        = fmt.Errorf("asset not found: %w", locate.ErrNoRecord)
	ErrPalletNotFound       = fmt.Errorf("pallet not found: %w", locate.ErrNoRecord)
	ErrNoScans              = fmt.Errorf("no scan events: %w", locate.ErrNoRecord)
	ErrNoAuditSubmission    = fmt.Errorf("no audit submissions: %w", locate.ErrNoRecord)
	ErrNoConfirmation       = fmt.Errorf("no confirmed location: %w", locate.ErrNoRecord)
	ErrUnresolvedIdentifier = fmt.Errorf("identifier not resolved: %w", locate.ErrNoRecord)
)
