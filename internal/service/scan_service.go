package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/davidly-empire/security-verifier-server/internal/dto"
	"github.com/davidly-empire/security-verifier-server/internal/model"
	"github.com/davidly-empire/security-verifier-server/internal/repository"
	"github.com/davidly-empire/security-verifier-server/pkg/redis"
)

var (
	ErrScanNotFound    = errors.New("scan event not found")
	ErrInvalidScanTime = errors.New("invalid scan timestamp")
)

// ScanService handles ingestion and retrieval of scan events.
type ScanService interface {
	Create(ctx context.Context, req *dto.CreateScanRequest) (*dto.ScanResponse, error)
	List(ctx context.Context, req *dto.ScanListRequest) ([]dto.ScanResponse, error)
	Delete(ctx context.Context, id int64) error
}

type scanService struct {
	repo   *repository.Repository
	cal    *ShiftCalendar
	rdb    *redis.Client
	logger *zap.Logger
}

// NewScanService creates a ScanService instance. rdb may be nil.
func NewScanService(repo *repository.Repository, cal *ShiftCalendar, rdb *redis.Client, logger *zap.Logger) ScanService {
	return &scanService{repo: repo, cal: cal, rdb: rdb, logger: logger}
}

// ParseTimestamp normalizes a boundary timestamp to the site timezone.
// Accepts ISO-8601 with an explicit offset (+05:30 or Z) and the bare
// YYYY-MM-DDTHH:MM:SS form, which is taken as site-local.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, ErrInvalidScanTime
}

func (s *scanService) Create(ctx context.Context, req *dto.CreateScanRequest) (*dto.ScanResponse, error) {
	scan := &model.ScanEvent{
		GuardName:       req.GuardName,
		CheckpointID:    req.CheckpointID,
		CheckpointLabel: req.CheckpointLabel,
		FactoryCode:     req.FactoryCode,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		ScanTime:        time.Now().In(s.cal.Location()),
	}

	if req.ScanTime != "" {
		t, err := ParseTimestamp(req.ScanTime, s.cal.Location())
		if err != nil {
			return nil, err
		}
		scan.ScanTime = t
	}

	if req.RoundSlot != "" {
		t, err := ParseTimestamp(req.RoundSlot, s.cal.Location())
		if err != nil {
			return nil, err
		}
		scan.RoundSlot = &t
	}

	if err := s.repo.Scan.Create(ctx, scan); err != nil {
		s.logger.Error("create scan failed", zap.String("guard", req.GuardName), zap.Error(err))
		return nil, err
	}

	// a new scan changes that day's round table
	s.invalidateReportCache(ctx, scan)

	resp := toScanResponse(scan)
	return &resp, nil
}

func (s *scanService) List(ctx context.Context, req *dto.ScanListRequest) ([]dto.ScanResponse, error) {
	filter := repository.ScanFilter{
		FactoryCode: req.FactoryCode,
		GuardName:   req.GuardName,
	}

	if req.Date != "" {
		from, to, err := s.cal.DayRange(req.Date)
		if err != nil {
			return nil, err
		}
		filter.From, filter.To = from, to
	}

	scans, err := s.repo.Scan.List(ctx, filter)
	if err != nil {
		s.logger.Error("list scans failed", zap.Error(err))
		return nil, err
	}

	resps := make([]dto.ScanResponse, 0, len(scans))
	for i := range scans {
		resps = append(resps, toScanResponse(&scans[i]))
	}
	return resps, nil
}

func (s *scanService) Delete(ctx context.Context, id int64) error {
	scan, err := s.repo.Scan.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScanNotFound
		}
		return err
	}

	if err := s.repo.Scan.Delete(ctx, id); err != nil {
		s.logger.Error("delete scan failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.invalidateReportCache(ctx, scan)
	return nil
}

func (s *scanService) invalidateReportCache(ctx context.Context, scan *model.ScanEvent) {
	if s.rdb == nil || scan.FactoryCode == "" {
		return
	}
	date := scan.ScanTime.In(s.cal.Location()).Format("2006-01-02")
	if err := s.rdb.InvalidateReport(ctx, scan.FactoryCode, date); err != nil {
		s.logger.Warn("report cache invalidation failed",
			zap.String("factory", scan.FactoryCode),
			zap.String("date", date),
			zap.Error(err),
		)
	}
}

func toScanResponse(scan *model.ScanEvent) dto.ScanResponse {
	return dto.ScanResponse{
		ID:              scan.ID,
		GuardName:       scan.GuardName,
		CheckpointID:    scan.CheckpointID,
		CheckpointLabel: scan.CheckpointLabel,
		FactoryCode:     scan.FactoryCode,
		Latitude:        scan.Latitude,
		Longitude:       scan.Longitude,
		ScanTime:        scan.ScanTime,
		RoundSlot:       scan.RoundSlot,
		Status:          scan.Status,
	}
}
