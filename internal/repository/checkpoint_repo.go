package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/davidly-empire/security-verifier-server/internal/model"
)

// CheckpointRepository is the data access layer for QR checkpoints.
type CheckpointRepository interface {
	Create(ctx context.Context, cp *model.Checkpoint) error
	GetByID(ctx context.Context, id string) (*model.Checkpoint, error)
	Update(ctx context.Context, cp *model.Checkpoint) error
	Delete(ctx context.Context, id string) error
	ListByFactory(ctx context.Context, factoryCode string) ([]model.Checkpoint, error)
}

type checkpointRepo struct {
	db *gorm.DB
}

// NewCheckpointRepo creates the GORM-backed CheckpointRepository.
func NewCheckpointRepo(db *gorm.DB) CheckpointRepository {
	return &checkpointRepo{db: db}
}

func (r *checkpointRepo) Create(ctx context.Context, cp *model.Checkpoint) error {
	return r.db.WithContext(ctx).Create(cp).Error
}

func (r *checkpointRepo) GetByID(ctx context.Context, id string) (*model.Checkpoint, error) {
	var cp model.Checkpoint
	err := r.db.WithContext(ctx).
		Where("checkpoint_id = ?", id).
		First(&cp).Error
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

func (r *checkpointRepo) Update(ctx context.Context, cp *model.Checkpoint) error {
	return r.db.WithContext(ctx).Save(cp).Error
}

func (r *checkpointRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("checkpoint_id = ?", id).
		Delete(&model.Checkpoint{}).Error
}

func (r *checkpointRepo) ListByFactory(ctx context.Context, factoryCode string) ([]model.Checkpoint, error) {
	var cps []model.Checkpoint
	err := r.db.WithContext(ctx).
		Where("factory_code = ? AND is_active = ?", factoryCode, true).
		Order("checkpoint_id").
		Find(&cps).Error
	if err != nil {
		return nil, err
	}
	return cps, nil
}
