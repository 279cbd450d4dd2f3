package models

import (
	"time"

	"github.com/google/uuid"
)

// ScanEvent is one barcode scan of an asset at a location.
type ScanEvent struct {
	ID        uuid.UUID `json:"id"`
	AssetRef  string    `json:"asset_ref"`
	Location  string    `json:"location"`
	ScannedBy string    `json:"scanned_by"`
	ScannedAt time.Time `json:"scanned_at"`
}

// ScanCluster is a group of recent scans of one asset at the same
// location, with the newest timestamp and the row count.
type ScanCluster struct {
	Location   string    `json:"location"`
	LastSeenAt time.Time `json:"last_seen_at"`
	Count      int       `json:"count"`
}
