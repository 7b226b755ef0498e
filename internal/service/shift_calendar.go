package service

import (
	"time"

	pkgerrors "github.com/davidly-empire/security-verifier-server/pkg/errors"
)

// ── shift calendar ──────────────────────────────────────────
//
// The 24-hour patrol cycle for a report date is composed of two regimes:
//
//   night shift: 21:00 of the PREVIOUS day through 05:30 of the report date,
//                both endpoints included, every 30 minutes (18 rounds)
//   day shift:   06:00 through 21:00 of the report date, both endpoints
//                included, every 60 minutes (16 rounds)
//
// 34 rounds total, strictly ascending. The regimes cannot collide: the night
// segment ends at 05:30 and the day segment starts at 06:00 of the same date,
// and the night 21:00 start belongs to the previous day while the day 21:00
// end belongs to the report date.
// ─────────────────────────────────────────────────────────────

const (
	nightStepMinutes = 30
	dayStepMinutes   = 60

	nightStartHour = 21 // previous day
	nightEndHour   = 5
	nightEndMinute = 30
	dayStartHour   = 6
	dayEndHour     = 21
)

// ExpectedCheckpoint is one scheduled patrol round, derived fresh per report
// date and never persisted.
type ExpectedCheckpoint struct {
	RoundNumber int
	Scheduled   time.Time
	WindowStart time.Time
	WindowEnd   time.Time
}

// RoundSlot is one round's time span for round-table reports: a slot runs
// from its scheduled time to the next round's scheduled time (the final slot
// spans 30 minutes).
type RoundSlot struct {
	Number int
	Start  time.Time
	End    time.Time
}

// ShiftCalendar derives expected patrol rounds in the site timezone.
type ShiftCalendar struct {
	loc   *time.Location
	grace time.Duration
}

// NewShiftCalendar creates a calendar for the given site timezone and grace
// period.
func NewShiftCalendar(loc *time.Location, grace time.Duration) *ShiftCalendar {
	return &ShiftCalendar{loc: loc, grace: grace}
}

// Location returns the site timezone the calendar operates in.
func (c *ShiftCalendar) Location() *time.Location { return c.loc }

// Grace returns the configured grace period.
func (c *ShiftCalendar) Grace() time.Duration { return c.grace }

// ParseDate parses a YYYY-MM-DD report date in the site timezone.
func (c *ShiftCalendar) ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", date, c.loc)
	if err != nil {
		return time.Time{}, pkgerrors.ErrInvalidDate
	}
	return t, nil
}

// DayRange returns the inclusive [00:00:00, 23:59:59] bounds of a report date
// in the site timezone, matching how the store filters scan_time.
func (c *ShiftCalendar) DayRange(date string) (time.Time, time.Time, error) {
	day, err := c.ParseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return day, day.Add(24*time.Hour - time.Second), nil
}

// ExpectedCheckpoints returns the 34 expected rounds for a report date,
// sorted ascending, each with its grace window.
func (c *ShiftCalendar) ExpectedCheckpoints(date string) ([]ExpectedCheckpoint, error) {
	day, err := c.ParseDate(date)
	if err != nil {
		return nil, err
	}

	checkpoints := make([]ExpectedCheckpoint, 0, 34)

	// night shift: previous day 21:00 → report date 05:30, every 30 min
	nightStart := time.Date(day.Year(), day.Month(), day.Day(), nightStartHour, 0, 0, 0, c.loc).AddDate(0, 0, -1)
	nightEnd := time.Date(day.Year(), day.Month(), day.Day(), nightEndHour, nightEndMinute, 0, 0, c.loc)
	for t := nightStart; !t.After(nightEnd); t = t.Add(nightStepMinutes * time.Minute) {
		checkpoints = append(checkpoints, c.checkpointAt(t))
	}

	// day shift: report date 06:00 → 21:00, every 60 min
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), dayStartHour, 0, 0, 0, c.loc)
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), dayEndHour, 0, 0, 0, c.loc)
	for t := dayStart; !t.After(dayEnd); t = t.Add(dayStepMinutes * time.Minute) {
		checkpoints = append(checkpoints, c.checkpointAt(t))
	}

	for i := range checkpoints {
		checkpoints[i].RoundNumber = i + 1
	}

	return checkpoints, nil
}

func (c *ShiftCalendar) checkpointAt(t time.Time) ExpectedCheckpoint {
	return ExpectedCheckpoint{
		Scheduled:   t,
		WindowStart: t.Add(-c.grace),
		WindowEnd:   t.Add(c.grace),
	}
}

// RoundSlots returns the slot boundaries used by round-table reports. Slot i
// spans from round i's scheduled time to round i+1's; the last slot spans 30
// minutes.
func (c *ShiftCalendar) RoundSlots(date string) ([]RoundSlot, error) {
	checkpoints, err := c.ExpectedCheckpoints(date)
	if err != nil {
		return nil, err
	}

	slots := make([]RoundSlot, len(checkpoints))
	for i, cp := range checkpoints {
		end := cp.Scheduled.Add(nightStepMinutes * time.Minute)
		if i < len(checkpoints)-1 {
			end = checkpoints[i+1].Scheduled
		}
		slots[i] = RoundSlot{Number: cp.RoundNumber, Start: cp.Scheduled, End: end}
	}
	return slots, nil
}
