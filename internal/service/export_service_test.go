package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/davidly-empire/security-verifier-server/internal/model"
	pkgerrors "github.com/davidly-empire/security-verifier-server/pkg/errors"
)

func newExportFixture(t *testing.T) (ExportService, *mockRepos, *ShiftCalendar) {
	t.Helper()
	repo, mocks := newMockRepository()
	cal := testCalendar()
	reports := NewReportService(repo, cal, nil, 30*time.Minute, 5*time.Minute, zap.NewNop())
	return NewExportService(reports, cal, zap.NewNop()), mocks, cal
}

func TestExportRoundReportWorkbook(t *testing.T) {
	svc, mocks, cal := newExportFixture(t)
	ctx := context.Background()
	loc := cal.Location()

	seedFactory(t, mocks, "F1")
	seedCheckpoint(t, mocks, "QR1", "F1")

	slot := time.Date(2026, 1, 22, 12, 0, 0, 0, loc)
	scan := model.ScanEvent{
		GuardName:    "Ram Singh",
		CheckpointID: "QR1",
		FactoryCode:  "F1",
		ScanTime:     slot.Add(5 * time.Second),
		RoundSlot:    &slot,
	}
	if err := mocks.scan.Create(ctx, &scan); err != nil {
		t.Fatalf("seed scan: %v", err)
	}

	buf, filename, err := svc.ExportRoundReport(ctx, "F1", "2026-01-22", ReportCaller{UserID: "u1", Name: "Admin User"})
	if err != nil {
		t.Fatalf("ExportRoundReport: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("filename = %q, want .xlsx suffix", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("Rounds", "A1"); got != "Empire Mills" {
		t.Errorf("A1 = %q, want factory name", got)
	}
	if got, _ := f.GetCellValue("Rounds", "A5"); got != "Checkpoint" {
		t.Errorf("A5 = %q, want table header", got)
	}

	rows, err := f.GetRows("Rounds")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	// 3 title lines + blank + header + 34 data rows
	if len(rows) != 39 {
		t.Errorf("sheet rows = %d, want 39", len(rows))
	}

	var successRows int
	for _, row := range rows[5:] {
		if len(row) >= 7 && row[6] == model.StatusSuccess {
			successRows++
			if row[3] != "Ram Singh" {
				t.Errorf("success row guard = %q", row[3])
			}
		}
	}
	if successRows != 1 {
		t.Errorf("SUCCESS rows = %d, want 1", successRows)
	}
}

func TestExportRoundReportUnknownFactory(t *testing.T) {
	svc, _, _ := newExportFixture(t)

	_, _, err := svc.ExportRoundReport(context.Background(), "NOPE", "2026-01-22", ReportCaller{})
	if !errors.Is(err, pkgerrors.ErrFactoryNotFound) {
		t.Fatalf("err = %v, want ErrFactoryNotFound", err)
	}
}

func TestExportScheduleICS(t *testing.T) {
	svc, _, _ := newExportFixture(t)

	buf, filename, err := svc.ExportScheduleICS("2026-01-22")
	if err != nil {
		t.Fatalf("ExportScheduleICS: %v", err)
	}
	if filename != "patrol_schedule_2026-01-22.ics" {
		t.Errorf("filename = %q", filename)
	}

	feed := buf.String()
	if !strings.Contains(feed, "BEGIN:VCALENDAR") {
		t.Fatal("feed missing VCALENDAR envelope")
	}
	if got := strings.Count(feed, "BEGIN:VEVENT"); got != 34 {
		t.Errorf("events = %d, want 34", got)
	}
	if !strings.Contains(feed, "Patrol round 1") {
		t.Error("feed missing first round summary")
	}
}

func TestExportScheduleICSInvalidDate(t *testing.T) {
	svc, _, _ := newExportFixture(t)

	if _, _, err := svc.ExportScheduleICS("not-a-date"); !errors.Is(err, pkgerrors.ErrInvalidDate) {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}
}
