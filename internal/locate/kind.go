package locate

import "fmt"

// SourceKind identifies which record source produced an evidence item.
// The set is closed: kinds are assigned when evidence is constructed and
// are never re-derived from display labels.
type SourceKind uint8

const (
	KindUnknown SourceKind = iota
	KindAssetRecord
	KindQueueLocation
	KindErasure
	KindQualityCheck
	KindPallet
	KindScanCluster
	KindScanLatest
	KindAudit
	KindConfirmed
	KindInferred
	KindInferredStage
	KindRecencyBoost
	KindStageConflict
)

var kindNames = map[SourceKind]string{
	KindUnknown:       "unknown",
	KindAssetRecord:   "asset_record",
	KindQueueLocation: "queue_location",
	KindErasure:       "erasure",
	KindQualityCheck:  "quality_check",
	KindPallet:        "pallet",
	KindScanCluster:   "scan_cluster",
	KindScanLatest:    "scan_latest",
	KindAudit:         "audit",
	KindConfirmed:     "confirmed",
	KindInferred:      "inferred",
	KindInferredStage: "inferred_stage",
	KindRecencyBoost:  "recency_boost",
	KindStageConflict: "stage_conflict",
}

func (k SourceKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("source_kind(%d)", uint8(k))
}

// MarshalText makes SourceKind render as its name in JSON output.
func (k SourceKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseSourceKind maps a configuration name back to its kind.
// Returns KindUnknown for names outside the closed set.
func ParseSourceKind(name string) SourceKind {
	for k, n := range kindNames {
		if n == name {
			return k
		}
	}
	return KindUnknown
}

// meaningful reports whether evidence of this kind counts when looking for
// the single most recent signal. Metadata-only record updates and inferred
// signals do not.
func (k SourceKind) meaningful() bool {
	switch k {
	case KindErasure, KindQualityCheck, KindPallet, KindScanCluster, KindScanLatest, KindAudit, KindConfirmed:
		return true
	}
	return false
}

// synthetic reports whether the item was added by the pipeline itself
// rather than collected from a record source.
func (k SourceKind) synthetic() bool {
	return k == KindRecencyBoost || k == KindStageConflict
}

// Stage is a position in the device-processing workflow. It is set on
// evidence at construction time so later pipeline steps never have to
// guess a stage from a location label.
type Stage uint8

const (
	StageNone Stage = iota
	StageIntake
	StageErasure
	StageQualityCheck
	StageSorting
)

var stageNames = map[Stage]string{
	StageNone:         "",
	StageIntake:       "intake",
	StageErasure:      "erasure",
	StageQualityCheck: "quality_check",
	StageSorting:      "sorting",
}

func (s Stage) String() string { return stageNames[s] }

// MarshalText renders the stage name (empty for StageNone).
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(stageNames[s]), nil
}

// stageForAuditType maps an audit submission type onto the workflow.
func stageForAuditType(auditType string) Stage {
	switch auditType {
	case "intake":
		return StageIntake
	case "erasure":
		return StageErasure
	case "quality_check":
		return StageQualityCheck
	case "sorting", "pallet_assignment":
		return StageSorting
	}
	return StageNone
}
