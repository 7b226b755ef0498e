package service

import (
	"go.uber.org/zap"

	"github.com/davidly-empire/security-verifier-server/config"
	"github.com/davidly-empire/security-verifier-server/internal/repository"
	"github.com/davidly-empire/security-verifier-server/pkg/jwt"
	"github.com/davidly-empire/security-verifier-server/pkg/redis"
)

// Service aggregates all business services.
type Service struct {
	Auth       AuthService
	User       UserService
	Factory    FactoryService
	Checkpoint CheckpointService
	Scan       ScanService
	Compliance ComplianceService
	Report     ReportService
	Export     ExportService
}

// NewService wires the services. rdb may be nil; the dependents degrade
// gracefully (no blacklist, no report cache).
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	cal := NewShiftCalendar(cfg.Patrol.Location(), cfg.Patrol.GracePeriod)

	reports := NewReportService(repo, cal, rdb, cfg.Patrol.RoundGap, cfg.Patrol.ReportTTL, logger)

	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:       NewUserService(repo, logger),
		Factory:    NewFactoryService(repo, logger),
		Checkpoint: NewCheckpointService(repo, logger),
		Scan:       NewScanService(repo, cal, rdb, logger),
		Compliance: NewComplianceService(repo, cal, logger),
		Report:     reports,
		Export:     NewExportService(reports, cal, logger),
	}
}
