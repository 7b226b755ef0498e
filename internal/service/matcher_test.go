package service

import (
	"math"
	"testing"
	"time"

	"github.com/davidly-empire/security-verifier-server/internal/model"
)

func scanAt(t time.Time) model.ScanEvent {
	return model.ScanEvent{GuardName: "Ram Singh", CheckpointID: "QR1", ScanTime: t}
}

func TestMatchWindowedInsideGrace(t *testing.T) {
	cal := testCalendar()
	loc := cal.Location()

	expected, err := cal.ExpectedCheckpoints("2026-01-22")
	if err != nil {
		t.Fatalf("ExpectedCheckpoints: %v", err)
	}

	// 9 minutes past the 07:00 round: within the 10-minute grace
	scans := []model.ScanEvent{scanAt(time.Date(2026, 1, 22, 7, 9, 0, 0, loc))}

	results := MatchWindowed(expected, scans)
	if len(results) != 34 {
		t.Fatalf("expected 34 results, got %d", len(results))
	}

	matched := 0
	for _, m := range results {
		if m.Scan == nil {
			continue
		}
		matched++
		if got := m.Expected.Scheduled.Format("15:04"); got != "07:00" {
			t.Errorf("scan matched round %s, want 07:00", got)
		}
		if m.DistanceSeconds != 540 {
			t.Errorf("distance = %v, want 540", m.DistanceSeconds)
		}
	}
	if matched != 1 {
		t.Errorf("matched rounds = %d, want 1", matched)
	}
}

func TestMatchWindowedOutsideGrace(t *testing.T) {
	cal := testCalendar()
	loc := cal.Location()

	expected, _ := cal.ExpectedCheckpoints("2026-01-22")

	// 11 minutes past 07:00: outside every window
	scans := []model.ScanEvent{scanAt(time.Date(2026, 1, 22, 7, 11, 0, 0, loc))}

	for _, m := range MatchWindowed(expected, scans) {
		if m.Scan != nil {
			t.Fatalf("scan at 07:11 matched round %v, want no match", m.Expected.Scheduled)
		}
		if ClassifyWindowed(m) != model.StatusMissed {
			t.Fatalf("classification = %s, want MISSED", ClassifyWindowed(m))
		}
	}
}

func TestMatchWindowedEarliestScanWins(t *testing.T) {
	cal := testCalendar()
	loc := cal.Location()

	expected, _ := cal.ExpectedCheckpoints("2026-01-22")

	// both inside the 07:00 window; lists arrive sorted ascending
	scans := []model.ScanEvent{
		scanAt(time.Date(2026, 1, 22, 6, 55, 0, 0, loc)),
		scanAt(time.Date(2026, 1, 22, 7, 2, 0, 0, loc)),
	}

	for _, m := range MatchWindowed(expected, scans) {
		if m.Scan == nil {
			continue
		}
		if !m.Scan.ScanTime.Equal(scans[0].ScanTime) {
			t.Fatalf("matched scan %v, want the earlier 06:55", m.Scan.ScanTime)
		}
	}
}

func TestMatchNearestAssignsClosestRound(t *testing.T) {
	cal := testCalendar()
	loc := cal.Location()

	expected, _ := cal.ExpectedCheckpoints("2026-01-22")

	// 06:40 sits between 06:00 and 07:00; 07:00 is closer (20 min vs 40 min)
	scans := []model.ScanEvent{scanAt(time.Date(2026, 1, 22, 6, 40, 0, 0, loc))}

	results := MatchNearest(expected, scans)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	m := results[0]
	if got := m.Expected.Scheduled.Format("15:04"); got != "07:00" {
		t.Errorf("assigned round %s, want 07:00", got)
	}
	if got := ClassifyNearest(m, cal.Grace()); got != model.StatusLate {
		t.Errorf("classification = %s, want LATE (20m beyond grace)", got)
	}
}

func TestMatchNearestTieGoesToEarlierRound(t *testing.T) {
	cal := testCalendar()
	loc := cal.Location()

	expected, _ := cal.ExpectedCheckpoints("2026-01-22")

	// 06:30 is exactly 30 min from both 06:00 and 07:00
	scans := []model.ScanEvent{scanAt(time.Date(2026, 1, 22, 6, 30, 0, 0, loc))}

	m := MatchNearest(expected, scans)[0]
	if got := m.Expected.Scheduled.Format("15:04"); got != "06:00" {
		t.Errorf("tie assigned to %s, want the earlier 06:00", got)
	}
}

func TestClassifyNearestWithNoSchedule(t *testing.T) {
	cal := testCalendar()
	loc := cal.Location()

	scans := []model.ScanEvent{scanAt(time.Date(2026, 1, 22, 12, 0, 0, 0, loc))}

	results := MatchNearest(nil, scans)
	if !math.IsInf(results[0].DistanceSeconds, 1) {
		t.Fatalf("distance = %v, want +Inf", results[0].DistanceSeconds)
	}
	if got := ClassifyNearest(results[0], cal.Grace()); got != model.StatusMissed {
		t.Errorf("classification = %s, want MISSED", got)
	}
}

func TestClassifyNearestGraceBoundaryIsInclusive(t *testing.T) {
	cal := testCalendar()
	loc := cal.Location()

	expected, _ := cal.ExpectedCheckpoints("2026-01-22")

	// exactly 10 minutes off: grace is inclusive
	scans := []model.ScanEvent{scanAt(time.Date(2026, 1, 22, 7, 10, 0, 0, loc))}

	m := MatchNearest(expected, scans)[0]
	if got := ClassifyNearest(m, cal.Grace()); got != model.StatusSuccess {
		t.Errorf("classification at exact grace = %s, want SUCCESS", got)
	}
}
