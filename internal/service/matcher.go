package service

import (
	"math"
	"time"

	"github.com/davidly-empire/security-verifier-server/internal/model"
)

// ── matching & classification ───────────────────────────────
//
// Two policies pair scans with expected rounds:
//
//   windowed: an expected round matches the earliest scan whose time falls
//     within ±grace of the scheduled time. Boolean outcome: the round was
//     either covered on time or missed.
//
//   nearest: every scan is assigned to its closest expected round regardless
//     of any window, ties broken by the earlier round. Tri-state outcome:
//     SUCCESS within grace, LATE beyond it, MISSED when the date has no
//     schedule at all.
//
// Both operate on scans already filtered to one guard/factory and date.
// ─────────────────────────────────────────────────────────────

// MatchResult pairs one expected round with at most one scan.
// DistanceSeconds is +Inf when no scan qualified.
type MatchResult struct {
	Expected        ExpectedCheckpoint
	Scan            *model.ScanEvent
	DistanceSeconds float64
}

// MatchWindowed pairs each expected round with the earliest scan inside its
// grace window. Scans must be sorted ascending by scan time; the earliest
// in-window scan wins, which makes the tie-break deterministic.
func MatchWindowed(expected []ExpectedCheckpoint, scans []model.ScanEvent) []MatchResult {
	results := make([]MatchResult, 0, len(expected))

	for _, exp := range expected {
		result := MatchResult{Expected: exp, DistanceSeconds: math.Inf(1)}
		for i := range scans {
			st := scans[i].ScanTime
			if st.Before(exp.WindowStart) || st.After(exp.WindowEnd) {
				continue
			}
			result.Scan = &scans[i]
			result.DistanceSeconds = math.Abs(st.Sub(exp.Scheduled).Seconds())
			break
		}
		results = append(results, result)
	}

	return results
}

// MatchNearest assigns every scan to its closest expected round. A scan with
// equal distance to two rounds goes to the earlier one. When the expected set
// is empty each scan maps to a result with no Expected and +Inf distance.
func MatchNearest(expected []ExpectedCheckpoint, scans []model.ScanEvent) []MatchResult {
	results := make([]MatchResult, 0, len(scans))

	for i := range scans {
		result := MatchResult{Scan: &scans[i], DistanceSeconds: math.Inf(1)}
		for _, exp := range expected {
			d := math.Abs(scans[i].ScanTime.Sub(exp.Scheduled).Seconds())
			if d < result.DistanceSeconds {
				result.DistanceSeconds = d
				result.Expected = exp
			}
		}
		results = append(results, result)
	}

	return results
}

// ClassifyWindowed maps a windowed match onto the boolean report convention.
func ClassifyWindowed(m MatchResult) string {
	if m.Scan != nil {
		return model.StatusSuccess
	}
	return model.StatusMissed
}

// ClassifyNearest maps a nearest-neighbor assignment onto the persisted
// tri-state status.
func ClassifyNearest(m MatchResult, grace time.Duration) string {
	if math.IsInf(m.DistanceSeconds, 1) {
		return model.StatusMissed
	}
	if m.DistanceSeconds <= grace.Seconds() {
		return model.StatusSuccess
	}
	return model.StatusLate
}
