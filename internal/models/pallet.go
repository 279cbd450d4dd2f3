package models

import "time"

// Pallet statuses.
const (
	PalletOpen    = "open"
	PalletClosed  = "closed"
	PalletShipped = "shipped"
)

// Pallet represents a physical pallet being filled in the warehouse.
type Pallet struct {
	ID          string    `json:"id"`
	Location    *string   `json:"location"`
	Destination *string   `json:"destination"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
