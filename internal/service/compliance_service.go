package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/davidly-empire/security-verifier-server/internal/dto"
	"github.com/davidly-empire/security-verifier-server/internal/model"
	"github.com/davidly-empire/security-verifier-server/internal/repository"
)

// ComplianceService computes guard-level compliance statistics and the persisted
// status recompute batch.
//
// Design notes:
//   - GetGuardCompliance is the ephemeral, windowed (boolean) view: one
//     report per (guard, date) query, nothing persisted.
//   - RecomputeStatuses is the durable, nearest-neighbor (tri-state) view:
//     it writes one status per scan back to the store. Classification is a
//     pure function of scan_time and the schedule, so reruns are idempotent.
//   - A single failed status write never aborts the batch; failures are
//     logged and surfaced through the response counters.
type ComplianceService interface {
	GetGuardCompliance(ctx context.Context, guardName, date string) (*dto.GuardComplianceResponse, error)
	RecomputeStatuses(ctx context.Context, date string) (*dto.RecomputeResponse, error)
}

type complianceService struct {
	repo   *repository.Repository
	cal    *ShiftCalendar
	logger *zap.Logger
}

// NewComplianceService creates a ComplianceService instance.
func NewComplianceService(repo *repository.Repository, cal *ShiftCalendar, logger *zap.Logger) ComplianceService {
	return &complianceService{repo: repo, cal: cal, logger: logger}
}

// GetGuardCompliance computes on-time/missed counts and efficiency for one
// guard on one date using windowed matching over the guard's scans.
func (s *complianceService) GetGuardCompliance(ctx context.Context, guardName, date string) (*dto.GuardComplianceResponse, error) {
	expected, err := s.cal.ExpectedCheckpoints(date)
	if err != nil {
		return nil, err
	}

	// query the full schedule span, not the calendar day: the night shift
	// starts 21:00 of the previous evening and those scans must count
	from := expected[0].WindowStart
	to := expected[len(expected)-1].WindowEnd

	scans, err := s.repo.Scan.List(ctx, repository.ScanFilter{
		GuardName: guardName,
		From:      from,
		To:        to,
	})
	if err != nil {
		s.logger.Error("list guard scans failed", zap.String("guard", guardName), zap.Error(err))
		return nil, err
	}

	report := &dto.GuardComplianceResponse{
		GuardName:     guardName,
		ReportDate:    date,
		TotalExpected: len(expected),
		MissedDetails: []dto.MissedRound{},
	}

	for _, m := range MatchWindowed(expected, scans) {
		if ClassifyWindowed(m) == model.StatusSuccess {
			report.OnTimeCount++
			continue
		}
		report.MissedCount++
		report.MissedDetails = append(report.MissedDetails, dto.MissedRound{
			ExpectedTime: m.Expected.Scheduled.Format("15:04"),
			Status:       model.StatusMissed,
		})
	}

	if report.TotalExpected > 0 {
		report.Efficiency = roundTo2(float64(report.OnTimeCount) / float64(report.TotalExpected) * 100)
	}

	return report, nil
}

// RecomputeStatuses reclassifies every scan on the date against the expected
// schedule via nearest-neighbor matching and writes the statuses back.
func (s *complianceService) RecomputeStatuses(ctx context.Context, date string) (*dto.RecomputeResponse, error) {
	expected, err := s.cal.ExpectedCheckpoints(date)
	if err != nil {
		return nil, err
	}

	from, to, err := s.cal.DayRange(date)
	if err != nil {
		return nil, err
	}

	scans, err := s.repo.Scan.List(ctx, repository.ScanFilter{From: from, To: to})
	if err != nil {
		s.logger.Error("list scans for recompute failed", zap.String("date", date), zap.Error(err))
		return nil, err
	}

	resp := &dto.RecomputeResponse{
		TotalExpected:  len(expected),
		TotalProcessed: len(scans),
	}
	if len(scans) == 0 {
		return resp, nil // nothing scanned that day: valid empty outcome
	}

	for _, m := range MatchNearest(expected, scans) {
		status := ClassifyNearest(m, s.cal.Grace())
		if err := s.repo.Scan.UpdateStatus(ctx, m.Scan.ID, status); err != nil {
			// counted, never fatal: the batch must finish and report partials
			resp.FailedCount++
			s.logger.Warn("status write-back failed",
				zap.Int64("scan_id", m.Scan.ID),
				zap.String("status", status),
				zap.Error(err),
			)
			continue
		}
		resp.UpdatedCount++
	}

	s.logger.Info("status recompute finished",
		zap.String("date", date),
		zap.Int("processed", resp.TotalProcessed),
		zap.Int("updated", resp.UpdatedCount),
		zap.Int("failed", resp.FailedCount),
	)

	return resp, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
