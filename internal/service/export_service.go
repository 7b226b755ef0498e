package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var ErrExportGenerateFail = errors.New("generate export file failed")

// ExportService produces file exports of the round report and the patrol schedule.
//
// Design notes:
//   - The round table exports as .xlsx; content is whatever
//     ReportService.GetFactoryRoundReport returns, so export and JSON view
//     can never drift apart.
//   - The expected patrol schedule exports as an iCalendar feed so guards
//     can subscribe to their round times from a phone calendar.
//   - Both return a bytes.Buffer plus a suggested filename; the handler owns
//     the HTTP headers.
type ExportService interface {
	ExportRoundReport(ctx context.Context, factoryCode, date string, caller ReportCaller) (*bytes.Buffer, string, error)
	ExportScheduleICS(date string) (*bytes.Buffer, string, error)
}

type exportService struct {
	reports ReportService
	cal     *ShiftCalendar
	logger  *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(reports ReportService, cal *ShiftCalendar, logger *zap.Logger) ExportService {
	return &exportService{reports: reports, cal: cal, logger: logger}
}

// ExportRoundReport renders the factory round table as an Excel workbook.
func (s *exportService) ExportRoundReport(ctx context.Context, factoryCode, date string, caller ReportCaller) (*bytes.Buffer, string, error) {
	report, err := s.reports.GetFactoryRoundReport(ctx, factoryCode, date, caller)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Rounds"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", ErrExportGenerateFail
	}

	// title block
	f.SetCellValue(sheet, "A1", report.FactoryName)
	f.SetCellValue(sheet, "A2", report.FactoryAddress)
	f.SetCellValue(sheet, "A3", fmt.Sprintf("Security Patrol Report : %s", report.ReportDate))

	// table header
	headers := []string{"Checkpoint", "Round", "Scan Time", "Guard", "Latitude", "Longitude", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range report.Rows {
		rowNum := 6 + i
		values := []interface{}{row.CheckpointLabel, row.Round, "", "", "", "", row.Status}
		if row.ScanTime != nil {
			values[2] = row.ScanTime.In(s.cal.Location()).Format("03:04 PM")
		}
		if row.GuardName != nil {
			values[3] = *row.GuardName
		}
		if row.Latitude != nil {
			values[4] = *row.Latitude
		}
		if row.Longitude != nil {
			values[5] = *row.Longitude
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowNum)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write xlsx failed", zap.String("factory", factoryCode), zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := report.Filename
	if filename == "" {
		filename = BuildReportFilename("PATROL_REPORT", factoryCode, date, caller.Name, time.Now().In(s.cal.Location()), "xlsx")
	}

	return buf, filename, nil
}

// ExportScheduleICS renders the expected patrol rounds of a date as an
// iCalendar feed; every round becomes one event spanning its grace window.
func (s *exportService) ExportScheduleICS(date string) (*bytes.Buffer, string, error) {
	checkpoints, err := s.cal.ExpectedCheckpoints(date)
	if err != nil {
		return nil, "", err
	}

	calendar := ics.NewCalendar()
	calendar.SetMethod(ics.MethodPublish)
	calendar.SetProductId("-//security-verifier//patrol-schedule//EN")

	for _, cp := range checkpoints {
		event := calendar.AddEvent(fmt.Sprintf("round-%d-%s@security-verifier", cp.RoundNumber, date))
		event.SetSummary(fmt.Sprintf("Patrol round %d", cp.RoundNumber))
		event.SetStartAt(cp.WindowStart)
		event.SetEndAt(cp.WindowEnd)
		event.SetDescription(fmt.Sprintf("Scheduled scan at %s", cp.Scheduled.Format("15:04")))
	}

	buf := bytes.NewBufferString(calendar.Serialize())
	return buf, fmt.Sprintf("patrol_schedule_%s.ics", date), nil
}
