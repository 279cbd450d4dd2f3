package models

import (
	"time"

	"github.com/google/uuid"
)

// ConfirmedLocation is a manual "I am looking at this device right here"
// record. Written by the human-confirmation workflow; read-only here.
type ConfirmedLocation struct {
	ID          uuid.UUID `json:"id"`
	AssetRef    string    `json:"asset_ref"`
	Location    string    `json:"location"`
	ConfirmedBy string    `json:"confirmed_by"`
	Note        string    `json:"note"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
