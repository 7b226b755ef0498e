package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/davidly-empire/security-verifier-server/internal/dto"
	"github.com/davidly-empire/security-verifier-server/internal/model"
	"github.com/davidly-empire/security-verifier-server/internal/repository"
	pkgerrors "github.com/davidly-empire/security-verifier-server/pkg/errors"
	"github.com/davidly-empire/security-verifier-server/pkg/redis"
)

// ReportCaller identifies who requested a report, for the audit trail.
type ReportCaller struct {
	UserID string
	Name   string
}

// ReportService builds factory-level round tables and gap-inferred patrol
// activity reports.
//
// Design notes:
//   - The round table is a full cross-product of (checkpoint × round slot):
//     checkpoints with no matching scan still appear, as MISSED rows.
//   - A scan belongs to a round when its round_slot equals the slot's start
//     boundary; scans without a round_slot fall back to exact scan_time
//     equality with the boundary.
//   - Fresh generations are cached in Redis for a short TTL and recorded in
//     the report audit trail; cache hits serve the audited payload as-is.
type ReportService interface {
	GetFactoryRoundReport(ctx context.Context, factoryCode, date string, caller ReportCaller) (*dto.RoundReportResponse, error)
	GetPatrolActivity(ctx context.Context, factoryCode, date string) (*dto.PatrolActivityResponse, error)
}

type reportService struct {
	repo   *repository.Repository
	cal    *ShiftCalendar
	rdb    *redis.Client
	gap    time.Duration
	ttl    time.Duration
	logger *zap.Logger
}

// NewReportService creates a ReportService instance. rdb may be nil, which
// disables report caching.
func NewReportService(repo *repository.Repository, cal *ShiftCalendar, rdb *redis.Client, gap, ttl time.Duration, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, cal: cal, rdb: rdb, gap: gap, ttl: ttl, logger: logger}
}

// GetFactoryRoundReport builds the (checkpoint × round) table for one factory
// and date.
func (s *reportService) GetFactoryRoundReport(ctx context.Context, factoryCode, date string, caller ReportCaller) (*dto.RoundReportResponse, error) {
	slots, err := s.cal.RoundSlots(date)
	if err != nil {
		return nil, err
	}

	if cached := s.cachedReport(ctx, factoryCode, date); cached != nil {
		return cached, nil
	}

	factory, err := s.repo.Factory.GetByCode(ctx, factoryCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ErrFactoryNotFound
		}
		s.logger.Error("load factory failed", zap.String("factory", factoryCode), zap.Error(err))
		return nil, err
	}

	checkpoints, err := s.repo.Checkpoint.ListByFactory(ctx, factoryCode)
	if err != nil {
		s.logger.Error("load checkpoints failed", zap.String("factory", factoryCode), zap.Error(err))
		return nil, err
	}

	from, to, err := s.cal.DayRange(date)
	if err != nil {
		return nil, err
	}
	scans, err := s.repo.Scan.List(ctx, repository.ScanFilter{
		FactoryCode: factoryCode,
		From:        from,
		To:          to,
	})
	if err != nil {
		s.logger.Error("load scans failed", zap.String("factory", factoryCode), zap.Error(err))
		return nil, err
	}

	// index scans by (checkpoint, slot boundary)
	scanIndex := make(map[string]*model.ScanEvent, len(scans))
	for i := range scans {
		sc := &scans[i]
		boundary := sc.ScanTime
		if sc.RoundSlot != nil {
			boundary = *sc.RoundSlot
		}
		key := slotKey(sc.CheckpointID, boundary.In(s.cal.Location()))
		if _, taken := scanIndex[key]; !taken {
			scanIndex[key] = sc
		}
	}

	generatedAt := time.Now().In(s.cal.Location())
	resp := &dto.RoundReportResponse{
		FactoryCode:    factory.FactoryCode,
		FactoryName:    factory.FactoryName,
		FactoryAddress: factory.FactoryAddress,
		ReportDate:     date,
		GeneratedAt:    generatedAt,
		Rows:           make([]dto.RoundRow, 0, len(checkpoints)*len(slots)),
	}

	for _, cp := range checkpoints {
		for _, slot := range slots {
			row := dto.RoundRow{
				CheckpointLabel: cp.Label,
				Round:           slot.Number,
				Status:          model.StatusMissed,
			}
			if scan, ok := scanIndex[slotKey(cp.CheckpointID, slot.Start)]; ok {
				st := scan.ScanTime
				row.ScanTime = &st
				row.Latitude = scan.Latitude
				row.Longitude = scan.Longitude
				guard := scan.GuardName
				row.GuardName = &guard
				row.Status = model.StatusSuccess
			}
			resp.Rows = append(resp.Rows, row)
		}
	}

	s.recordAudit(ctx, resp, caller, generatedAt)
	s.cacheReport(ctx, factoryCode, date, resp)

	return resp, nil
}

// GetPatrolActivity builds the gap-inferred round report for one factory and
// date. Zero scans yields an empty rounds list, not an error.
func (s *reportService) GetPatrolActivity(ctx context.Context, factoryCode, date string) (*dto.PatrolActivityResponse, error) {
	from, to, err := s.cal.DayRange(date)
	if err != nil {
		return nil, err
	}

	factory, err := s.repo.Factory.GetByCode(ctx, factoryCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ErrFactoryNotFound
		}
		s.logger.Error("load factory failed", zap.String("factory", factoryCode), zap.Error(err))
		return nil, err
	}

	scans, err := s.repo.Scan.List(ctx, repository.ScanFilter{
		FactoryCode: factoryCode,
		From:        from,
		To:          to,
	})
	if err != nil {
		s.logger.Error("load scans failed", zap.String("factory", factoryCode), zap.Error(err))
		return nil, err
	}

	resp := &dto.PatrolActivityResponse{
		FactoryCode: factory.FactoryCode,
		FactoryName: factory.FactoryName,
		ReportDate:  date,
		GeneratedAt: time.Now().In(s.cal.Location()),
		Rounds:      []dto.PatrolRound{},
	}

	for i, group := range SplitIntoRounds(scans, s.gap) {
		round := dto.PatrolRound{
			SerialNo:  i + 1,
			StartTime: group[0].ScanTime,
			EndTime:   group[len(group)-1].ScanTime,
			Records:   make([]dto.PatrolRecord, 0, len(group)),
		}
		for _, scan := range group {
			round.Records = append(round.Records, dto.PatrolRecord{
				GuardName:       scan.GuardName,
				PatrolTime:      scan.ScanTime,
				CheckpointLabel: scan.CheckpointLabel,
				Latitude:        scan.Latitude,
				Longitude:       scan.Longitude,
			})
		}
		resp.Rounds = append(resp.Rounds, round)
	}

	return resp, nil
}

// ── helpers ──

func slotKey(checkpointID string, boundary time.Time) string {
	return checkpointID + "@" + boundary.Format(time.RFC3339)
}

// BuildReportFilename composes the audit-friendly export filename.
func BuildReportFilename(reportType, factoryCode, date, userName string, generatedAt time.Time, ext string) string {
	safeName := strings.ReplaceAll(userName, " ", "_")
	if safeName == "" {
		safeName = "UNKNOWN"
	}
	return fmt.Sprintf("%s_%s_%s_%s_%s.%s",
		reportType, factoryCode, date, safeName, generatedAt.Format("20060102_150405"), ext)
}

func (s *reportService) recordAudit(ctx context.Context, resp *dto.RoundReportResponse, caller ReportCaller, generatedAt time.Time) {
	reportDate, err := s.cal.ParseDate(resp.ReportDate)
	if err != nil {
		return
	}

	// tokens carry the user id only; resolve the display name for the trail
	if caller.Name == "" && caller.UserID != "" {
		if user, err := s.repo.User.GetByID(ctx, caller.UserID); err == nil {
			caller.Name = user.FullName
		}
	}

	audit := &model.ReportAudit{
		ReportType:      "PATROL_REPORT",
		FactoryCode:     resp.FactoryCode,
		ReportDate:      reportDate,
		GeneratedByName: caller.Name,
		Filename:        BuildReportFilename("PATROL_REPORT", resp.FactoryCode, resp.ReportDate, caller.Name, generatedAt, "xlsx"),
		GeneratedAt:     generatedAt,
	}
	if caller.UserID != "" {
		id := caller.UserID
		audit.GeneratedBy = &id
	}

	if err := s.repo.ReportAudit.Create(ctx, audit); err != nil {
		// the report itself is still served
		s.logger.Warn("report audit write failed", zap.String("factory", resp.FactoryCode), zap.Error(err))
		return
	}

	resp.AuditID = audit.AuditID
	resp.Filename = audit.Filename
}

func (s *reportService) cachedReport(ctx context.Context, factoryCode, date string) *dto.RoundReportResponse {
	if s.rdb == nil {
		return nil
	}
	payload, err := s.rdb.GetCachedReport(ctx, factoryCode, date)
	if err != nil || payload == "" {
		return nil
	}
	var resp dto.RoundReportResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *reportService) cacheReport(ctx context.Context, factoryCode, date string, resp *dto.RoundReportResponse) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.SetCachedReport(ctx, factoryCode, date, string(payload), s.ttl); err != nil {
		s.logger.Warn("report cache write failed", zap.String("factory", factoryCode), zap.Error(err))
	}
}
