package models

// PalletNeighbor is another asset sharing a pallet, sampled for
// co-location inference.
type PalletNeighbor struct {
	StockID            string  `json:"stock_id"`
	Location           *string `json:"location"`
	HasErasureEvidence bool    `json:"has_erasure_evidence"`
}
