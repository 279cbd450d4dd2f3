package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit submission types recorded by the processing floor.
const (
	AuditIntake           = "intake"
	AuditErasure          = "erasure"
	AuditQualityCheck     = "quality_check"
	AuditSorting          = "sorting"
	AuditPalletAssignment = "pallet_assignment"
)

// AuditSubmission is one operator-submitted processing record.
type AuditSubmission struct {
	ID          uuid.UUID `json:"id"`
	AssetRef    string    `json:"asset_ref"`
	Type        string    `json:"type"`
	Actor       string    `json:"actor"`
	LogText     string    `json:"log_text"`
	SubmittedAt time.Time `json:"submitted_at"`
}
