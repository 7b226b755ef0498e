package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/davidly-empire/security-verifier-server/internal/model"
)

// ScanFilter narrows scan event queries. Zero values mean "no constraint".
type ScanFilter struct {
	FactoryCode string
	GuardName   string
	From        time.Time
	To          time.Time
}

// ScanRepository is the data access layer for scan events.
type ScanRepository interface {
	Create(ctx context.Context, scan *model.ScanEvent) error
	GetByID(ctx context.Context, id int64) (*model.ScanEvent, error)
	List(ctx context.Context, filter ScanFilter) ([]model.ScanEvent, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type scanRepo struct {
	db *gorm.DB
}

// NewScanRepo creates the GORM-backed ScanRepository.
func NewScanRepo(db *gorm.DB) ScanRepository {
	return &scanRepo{db: db}
}

func (r *scanRepo) Create(ctx context.Context, scan *model.ScanEvent) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *scanRepo) GetByID(ctx context.Context, id int64) (*model.ScanEvent, error) {
	var scan model.ScanEvent
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&scan).Error
	if err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *scanRepo) List(ctx context.Context, filter ScanFilter) ([]model.ScanEvent, error) {
	var scans []model.ScanEvent

	db := r.db.WithContext(ctx).Model(&model.ScanEvent{})
	if filter.FactoryCode != "" {
		db = db.Where("factory_code = ?", filter.FactoryCode)
	}
	if filter.GuardName != "" {
		db = db.Where("guard_name = ?", filter.GuardName)
	}
	if !filter.From.IsZero() {
		db = db.Where("scan_time >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		db = db.Where("scan_time <= ?", filter.To)
	}

	if err := db.Order("scan_time ASC").Find(&scans).Error; err != nil {
		return nil, err
	}
	return scans, nil
}

// UpdateStatus touches only the status column so recompute runs do not race
// with other writers over the rest of the record.
func (r *scanRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.ScanEvent{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *scanRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ScanEvent{}).Error
}
