package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/davidly-empire/security-verifier-server/internal/dto"
	"github.com/davidly-empire/security-verifier-server/internal/model"
	"github.com/davidly-empire/security-verifier-server/internal/repository"
	pkgerrors "github.com/davidly-empire/security-verifier-server/pkg/errors"
)

var ErrFactoryExists = errors.New("factory code already in use")

// FactoryService manages factory sites.
type FactoryService interface {
	Create(ctx context.Context, req *dto.CreateFactoryRequest) (*dto.FactoryResponse, error)
	GetByCode(ctx context.Context, code string) (*dto.FactoryResponse, error)
	Update(ctx context.Context, code string, req *dto.UpdateFactoryRequest) (*dto.FactoryResponse, error)
	Delete(ctx context.Context, code string) error
	List(ctx context.Context, includeInactive bool) ([]dto.FactoryResponse, error)
}

type factoryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFactoryService creates a FactoryService instance.
func NewFactoryService(repo *repository.Repository, logger *zap.Logger) FactoryService {
	return &factoryService{repo: repo, logger: logger}
}

func (s *factoryService) Create(ctx context.Context, req *dto.CreateFactoryRequest) (*dto.FactoryResponse, error) {
	if _, err := s.repo.Factory.GetByCode(ctx, req.FactoryCode); err == nil {
		return nil, ErrFactoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	factory := &model.Factory{
		FactoryCode:    req.FactoryCode,
		FactoryName:    req.FactoryName,
		FactoryAddress: req.FactoryAddress,
		IsActive:       true,
	}

	if err := s.repo.Factory.Create(ctx, factory); err != nil {
		s.logger.Error("create factory failed", zap.String("code", req.FactoryCode), zap.Error(err))
		return nil, err
	}

	resp := toFactoryResponse(factory)
	return &resp, nil
}

func (s *factoryService) GetByCode(ctx context.Context, code string) (*dto.FactoryResponse, error) {
	factory, err := s.repo.Factory.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ErrFactoryNotFound
		}
		return nil, err
	}
	resp := toFactoryResponse(factory)
	return &resp, nil
}

func (s *factoryService) Update(ctx context.Context, code string, req *dto.UpdateFactoryRequest) (*dto.FactoryResponse, error) {
	factory, err := s.repo.Factory.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ErrFactoryNotFound
		}
		return nil, err
	}

	if req.FactoryName != nil {
		factory.FactoryName = *req.FactoryName
	}
	if req.FactoryAddress != nil {
		factory.FactoryAddress = *req.FactoryAddress
	}
	if req.IsActive != nil {
		factory.IsActive = *req.IsActive
	}

	if err := s.repo.Factory.Update(ctx, factory); err != nil {
		s.logger.Error("update factory failed", zap.String("code", code), zap.Error(err))
		return nil, err
	}

	resp := toFactoryResponse(factory)
	return &resp, nil
}

func (s *factoryService) Delete(ctx context.Context, code string) error {
	if _, err := s.repo.Factory.GetByCode(ctx, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.ErrFactoryNotFound
		}
		return err
	}
	return s.repo.Factory.Delete(ctx, code)
}

func (s *factoryService) List(ctx context.Context, includeInactive bool) ([]dto.FactoryResponse, error) {
	factories, err := s.repo.Factory.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("list factories failed", zap.Error(err))
		return nil, err
	}

	resps := make([]dto.FactoryResponse, 0, len(factories))
	for i := range factories {
		resps = append(resps, toFactoryResponse(&factories[i]))
	}
	return resps, nil
}

func toFactoryResponse(factory *model.Factory) dto.FactoryResponse {
	return dto.FactoryResponse{
		FactoryCode:    factory.FactoryCode,
		FactoryName:    factory.FactoryName,
		FactoryAddress: factory.FactoryAddress,
		IsActive:       factory.IsActive,
	}
}
