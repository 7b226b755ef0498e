package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/davidly-empire/security-verifier-server/internal/model"
)

// ReportAuditRepository is the data access layer for the report audit trail.
type ReportAuditRepository interface {
	Create(ctx context.Context, audit *model.ReportAudit) error
	ListByFactory(ctx context.Context, factoryCode string, from, to time.Time) ([]model.ReportAudit, error)
}

type reportAuditRepo struct {
	db *gorm.DB
}

// NewReportAuditRepo creates the GORM-backed ReportAuditRepository.
func NewReportAuditRepo(db *gorm.DB) ReportAuditRepository {
	return &reportAuditRepo{db: db}
}

func (r *reportAuditRepo) Create(ctx context.Context, audit *model.ReportAudit) error {
	return r.db.WithContext(ctx).Create(audit).Error
}

func (r *reportAuditRepo) ListByFactory(ctx context.Context, factoryCode string, from, to time.Time) ([]model.ReportAudit, error) {
	var audits []model.ReportAudit

	db := r.db.WithContext(ctx).Where("factory_code = ?", factoryCode)
	if !from.IsZero() {
		db = db.Where("report_date >= ?", from)
	}
	if !to.IsZero() {
		db = db.Where("report_date <= ?", to)
	}

	if err := db.Order("generated_at DESC").Find(&audits).Error; err != nil {
		return nil, err
	}
	return audits, nil
}
