package models

import (
	"time"

	"github.com/google/uuid"
)

// AssetRecord is the warehouse inventory row for one device.
// StockID is the canonical identifier; Serial is the manufacturer serial.
type AssetRecord struct {
	ID            uuid.UUID  `json:"id"`
	StockID       string     `json:"stock_id"`
	Serial        string     `json:"serial"`
	PalletID      *string    `json:"pallet_id"`
	Location      *string    `json:"location"`
	QueueLocation *string    `json:"queue_location"`
	ErasedAt      *time.Time `json:"erased_at"`
	QCPassedAt    *time.Time `json:"qc_passed_at"`
	LastUpdate    time.Time  `json:"last_update"`
}
