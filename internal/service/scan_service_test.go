package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/davidly-empire/security-verifier-server/internal/dto"
)

func newScanFixture(t *testing.T) (ScanService, *mockRepos, *ShiftCalendar) {
	t.Helper()
	repo, mocks := newMockRepository()
	cal := testCalendar()
	return NewScanService(repo, cal, nil, zap.NewNop()), mocks, cal
}

func TestParseTimestampForms(t *testing.T) {
	loc := testCalendar().Location()

	cases := []struct {
		in   string
		want string // site-local rendering
	}{
		{"2026-01-22T12:00:05+05:30", "2026-01-22 12:00:05"},
		{"2026-01-22T06:30:05Z", "2026-01-22 12:00:05"}, // UTC input shifts to IST
		{"2026-01-22T12:00:05", "2026-01-22 12:00:05"},  // bare form is site-local
	}

	for _, tc := range cases {
		got, err := ParseTimestamp(tc.in, loc)
		if err != nil {
			t.Errorf("ParseTimestamp(%q): %v", tc.in, err)
			continue
		}
		if rendered := got.Format("2006-01-02 15:04:05"); rendered != tc.want {
			t.Errorf("ParseTimestamp(%q) = %s, want %s", tc.in, rendered, tc.want)
		}
	}

	for _, bad := range []string{"", "22/01/2026 12:00", "noon"} {
		if _, err := ParseTimestamp(bad, loc); !errors.Is(err, ErrInvalidScanTime) {
			t.Errorf("ParseTimestamp(%q) err = %v, want ErrInvalidScanTime", bad, err)
		}
	}
}

func TestScanCreateWithExplicitTimes(t *testing.T) {
	svc, mocks, cal := newScanFixture(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, &dto.CreateScanRequest{
		GuardName:    "Ram Singh",
		CheckpointID: "QR1",
		FactoryCode:  "F1",
		ScanTime:     "2026-01-22T12:00:05+05:30",
		RoundSlot:    "2026-01-22T12:00:00+05:30",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	loc := cal.Location()
	if !resp.ScanTime.Equal(time.Date(2026, 1, 22, 12, 0, 5, 0, loc)) {
		t.Errorf("scan_time = %v", resp.ScanTime)
	}
	if resp.RoundSlot == nil || !resp.RoundSlot.Equal(time.Date(2026, 1, 22, 12, 0, 0, 0, loc)) {
		t.Errorf("round_slot = %v", resp.RoundSlot)
	}

	stored, err := mocks.scan.GetByID(ctx, resp.ID)
	if err != nil {
		t.Fatalf("stored scan missing: %v", err)
	}
	if stored.GuardName != "Ram Singh" {
		t.Errorf("stored guard = %q", stored.GuardName)
	}
}

func TestScanCreateDefaultsScanTime(t *testing.T) {
	svc, _, cal := newScanFixture(t)

	before := time.Now().In(cal.Location())
	resp, err := svc.Create(context.Background(), &dto.CreateScanRequest{
		GuardName:    "Ram Singh",
		CheckpointID: "QR1",
		FactoryCode:  "F1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if resp.ScanTime.Before(before.Add(-time.Second)) || resp.ScanTime.After(time.Now().Add(time.Second)) {
		t.Errorf("defaulted scan_time = %v, want roughly now", resp.ScanTime)
	}
}

func TestScanCreateRejectsBadTimestamp(t *testing.T) {
	svc, _, _ := newScanFixture(t)

	_, err := svc.Create(context.Background(), &dto.CreateScanRequest{
		GuardName:    "Ram Singh",
		CheckpointID: "QR1",
		FactoryCode:  "F1",
		ScanTime:     "today at noon",
	})
	if !errors.Is(err, ErrInvalidScanTime) {
		t.Fatalf("err = %v, want ErrInvalidScanTime", err)
	}
}

func TestScanListFiltersByDate(t *testing.T) {
	svc, mocks, cal := newScanFixture(t)
	ctx := context.Background()
	loc := cal.Location()

	for _, ts := range []string{"2026-01-22T08:00:00", "2026-01-22T09:00:00", "2026-01-23T08:00:00"} {
		scan := scanAt(mustTime(t, loc, ts))
		scan.FactoryCode = "F1"
		if err := mocks.scan.Create(ctx, &scan); err != nil {
			t.Fatalf("seed scan: %v", err)
		}
	}

	scans, err := svc.List(ctx, &dto.ScanListRequest{FactoryCode: "F1", Date: "2026-01-22"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(scans) != 2 {
		t.Fatalf("scans = %d, want 2", len(scans))
	}
	if !scans[0].ScanTime.Before(scans[1].ScanTime) {
		t.Error("scans not sorted ascending")
	}
}

func TestScanDeleteMissing(t *testing.T) {
	svc, _, _ := newScanFixture(t)

	if err := svc.Delete(context.Background(), 404); !errors.Is(err, ErrScanNotFound) {
		t.Fatalf("err = %v, want ErrScanNotFound", err)
	}
}
