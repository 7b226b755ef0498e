package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/davidly-empire/security-verifier-server/internal/model"
)

// FactoryRepository is the data access layer for factories.
type FactoryRepository interface {
	Create(ctx context.Context, factory *model.Factory) error
	GetByCode(ctx context.Context, code string) (*model.Factory, error)
	Update(ctx context.Context, factory *model.Factory) error
	Delete(ctx context.Context, code string) error
	List(ctx context.Context, includeInactive bool) ([]model.Factory, error)
}

type factoryRepo struct {
	db *gorm.DB
}

// NewFactoryRepo creates the GORM-backed FactoryRepository.
func NewFactoryRepo(db *gorm.DB) FactoryRepository {
	return &factoryRepo{db: db}
}

func (r *factoryRepo) Create(ctx context.Context, factory *model.Factory) error {
	return r.db.WithContext(ctx).Create(factory).Error
}

func (r *factoryRepo) GetByCode(ctx context.Context, code string) (*model.Factory, error) {
	var factory model.Factory
	err := r.db.WithContext(ctx).
		Where("factory_code = ?", code).
		First(&factory).Error
	if err != nil {
		return nil, err
	}
	return &factory, nil
}

func (r *factoryRepo) Update(ctx context.Context, factory *model.Factory) error {
	return r.db.WithContext(ctx).Save(factory).Error
}

func (r *factoryRepo) Delete(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).
		Where("factory_code = ?", code).
		Delete(&model.Factory{}).Error
}

func (r *factoryRepo) List(ctx context.Context, includeInactive bool) ([]model.Factory, error) {
	var factories []model.Factory
	db := r.db.WithContext(ctx)
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	if err := db.Order("factory_code").Find(&factories).Error; err != nil {
		return nil, err
	}
	return factories, nil
}
