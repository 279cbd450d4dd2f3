package locate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// explainResults fills Explanation, AIExplanation and the IsMostRecent
// flag on every ranked result. It runs last, after scores are final.
func explainResults(results []RankedResult, globalMostRecent *time.Time, now time.Time) {
	for i := range results {
		r := &results[i]
		r.Flags.IsMostRecent = globalMostRecent != nil && r.LastSeen != nil &&
			r.LastSeen.Equal(*globalMostRecent)
	}

	for i := range results {
		r := &results[i]
		var runnerUp *RankedResult
		if i == 0 && len(results) > 1 {
			runnerUp = &results[1]
		}
		r.Explanation = shortExplanation(r, runnerUp, now)
		r.AIExplanation = narrative(r, results, now)
	}
}

// confidenceLabel buckets a normalized score into operator-facing words.
func confidenceLabel(score int) string {
	switch {
	case score >= 80:
		return "high"
	case score >= 60:
		return "medium-high"
	case score >= 40:
		return "medium"
	}
	return "low"
}

// dominantEvidence picks the evidence item that best explains a result,
// scanning kinds in priority order: confirmed, erasure, pallet,
// quality check, then whatever real evidence came first.
func dominantEvidence(items []EvidenceItem) *EvidenceItem {
	for _, k := range []SourceKind{KindConfirmed, KindErasure, KindPallet, KindQualityCheck} {
		for i := range items {
			if items[i].Kind == k {
				return &items[i]
			}
		}
	}
	for i := range items {
		if !items[i].Kind.synthetic() {
			return &items[i]
		}
	}
	if len(items) > 0 {
		return &items[0]
	}
	return nil
}

// shortExplanation composes the one-line rationale: what the dominant
// evidence says, how the top hypothesis compares to the runner-up, and
// what that implies for the asset.
func shortExplanation(r *RankedResult, runnerUp *RankedResult, now time.Time) string {
	dom := dominantEvidence(r.Evidence)
	if dom == nil {
		return fmt.Sprintf("%s has no retained evidence.", r.Location)
	}

	var b strings.Builder
	switch dom.Kind {
	case KindConfirmed:
		actor := dom.Meta["actor"]
		if actor == "" {
			actor = "an operator"
		}
		fmt.Fprintf(&b, "%s was manually confirmed by %s %s.", r.Location, actor, ago(dom.Timestamp, now))
	case KindErasure:
		fmt.Fprintf(&b, "Erasure completed %s, placing the device at the post-erasure stage.", ago(dom.Timestamp, now))
	case KindPallet:
		if place := dom.Meta["place"]; place != "" {
			fmt.Fprintf(&b, "The device is assigned to pallet %s, last placed at %s.", dom.Meta["pallet_id"], place)
		} else {
			fmt.Fprintf(&b, "The device is assigned to pallet %s.", dom.Meta["pallet_id"])
		}
	case KindQualityCheck:
		fmt.Fprintf(&b, "Quality check recorded %s puts the device at this stage.", ago(dom.Timestamp, now))
	case KindScanCluster, KindScanLatest:
		count, actor := scanSummary(r.Evidence)
		if actor != "" {
			fmt.Fprintf(&b, "%d recent scan(s) at %s, most recently by %s %s.", count, r.Location, actor, ago(r.LastSeen, now))
		} else {
			fmt.Fprintf(&b, "%d recent scan(s) at %s, most recently %s.", count, r.Location, ago(r.LastSeen, now))
		}
	case KindAudit:
		fmt.Fprintf(&b, "The latest audit entry (%s) was submitted by %s %s.", dom.Meta["type"], dom.Meta["actor"], ago(dom.Timestamp, now))
	case KindInferred, KindInferredStage:
		fmt.Fprintf(&b, "%s is inferred from %s co-located devices on the same pallet.", r.Location, dom.Meta["neighbors"])
	default:
		fmt.Fprintf(&b, "%s has supporting record activity %s.", r.Location, ago(r.LastSeen, now))
	}

	if runnerUp != nil {
		fmt.Fprintf(&b, " Confidence %d vs %d for the next-best hypothesis (%s).", r.Score, runnerUp.Score, runnerUp.Location)
	}

	if s := consequence(dom.Kind); s != "" {
		b.WriteString(" ")
		b.WriteString(s)
	}
	return b.String()
}

// consequence is the optional "so what" sentence per dominant kind.
func consequence(k SourceKind) string {
	switch k {
	case KindErasure:
		return "The device was erased and may be ready for resale."
	case KindPallet:
		return "It is likely physically on that pallet."
	case KindConfirmed:
		return "A person physically verified this location."
	case KindInferred, KindInferredStage:
		return "Treat this as a hint, not a sighting."
	}
	return ""
}

// narrative composes the longer workflow-aware explanation: where the
// hypothesis sits in the intake -> erasure -> quality-check ->
// sorting/pallet order, whether the asset appears to have re-entered
// the workflow, a confidence sentence and a concrete next step.
func narrative(r *RankedResult, all []RankedResult, now time.Time) string {
	var parts []string

	pos, known := stagePosition(r.Evidence)
	if known {
		if other := newerLaterStage(r, all); other != nil {
			otherPos, _ := stagePosition(other.Evidence)
			parts = append(parts, fmt.Sprintf(
				"A later-dated %s signal exists (%s), so processing has likely moved past this point.",
				stageName(otherPos), other.Location))
		} else if other := olderLaterStage(r, all); other != nil {
			parts = append(parts, fmt.Sprintf(
				"This %s activity is dated after the device's %s record; the asset may have re-entered the workflow. Expected next stage: %s.",
				stageName(pos), other.Location, stageName(min(pos+1, 4))))
		}
	}

	signals := 0
	for _, it := range r.Evidence {
		if !it.Kind.synthetic() {
			signals++
		}
	}
	parts = append(parts, fmt.Sprintf("Confidence is %s (%d/100) based on %d contributing signal(s).",
		confidenceLabel(r.Score), r.Score, signals))

	parts = append(parts, recommendedAction(dominantEvidence(r.Evidence)))
	return strings.Join(parts, " ")
}

// newerLaterStage finds another result at a later workflow stage whose
// evidence is dated after this result's.
func newerLaterStage(r *RankedResult, all []RankedResult) *RankedResult {
	pos, known := stagePosition(r.Evidence)
	if !known || r.LastSeen == nil {
		return nil
	}
	for i := range all {
		o := &all[i]
		if o == r || o.LastSeen == nil {
			continue
		}
		opos, ok := stagePosition(o.Evidence)
		if ok && opos > pos && o.LastSeen.After(*r.LastSeen) {
			return o
		}
	}
	return nil
}

// olderLaterStage finds another result at a later workflow stage whose
// evidence is older than this result's: the re-entry pattern.
func olderLaterStage(r *RankedResult, all []RankedResult) *RankedResult {
	pos, known := stagePosition(r.Evidence)
	if !known || r.LastSeen == nil {
		return nil
	}
	for i := range all {
		o := &all[i]
		if o == r || o.LastSeen == nil {
			continue
		}
		opos, ok := stagePosition(o.Evidence)
		if ok && opos > pos && o.LastSeen.Before(*r.LastSeen) {
			return o
		}
	}
	return nil
}

func stageName(pos int) string {
	switch pos {
	case 1:
		return "intake"
	case 2:
		return "erasure"
	case 3:
		return "quality-check"
	case 4:
		return "sorting/pallet"
	}
	return "unknown"
}

func recommendedAction(dom *EvidenceItem) string {
	if dom == nil {
		return "Recommended action: rescan the asset at its next touch point."
	}
	switch dom.Kind {
	case KindPallet:
		return "Recommended action: inspect the pallet and verify recent scans."
	case KindConfirmed:
		return "Recommended action: treat the confirmed location as authoritative unless a newer scan disagrees."
	case KindErasure:
		return "Recommended action: check the post-erasure holding area and the outbound bench queue."
	case KindQualityCheck:
		return "Recommended action: check the quality-check output racks."
	case KindScanCluster, KindScanLatest:
		return "Recommended action: walk the aisle and rescan the asset to confirm."
	case KindInferred, KindInferredStage:
		return "Recommended action: verify in person; this location is inferred from pallet mates."
	}
	return "Recommended action: rescan the asset at its next touch point."
}

// scanSummary totals scan-cluster counts and finds the latest scan actor.
func scanSummary(items []EvidenceItem) (int, string) {
	count := 0
	actor := ""
	for _, it := range items {
		switch it.Kind {
		case KindScanCluster:
			if n, err := strconv.Atoi(it.Meta["count"]); err == nil {
				count += n
			}
		case KindScanLatest:
			if actor == "" {
				actor = it.Meta["actor"]
			}
			if count == 0 {
				count = 1
			}
		}
	}
	if count == 0 {
		count = 1
	}
	return count, actor
}

// ago renders a timestamp age for humans.
func ago(t *time.Time, now time.Time) string {
	if t == nil {
		return "at an unknown time"
	}
	d := now.Sub(*t)
	switch {
	case d < time.Minute:
		return "moments ago"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 48*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
	return fmt.Sprintf("%dd ago", int(d.Hours()/24))
}
