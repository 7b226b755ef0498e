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

var (
	ErrCheckpointNotFound = errors.New("checkpoint not found")
	ErrCheckpointExists   = errors.New("checkpoint id already in use")
)

// CheckpointService manages QR checkpoints.
type CheckpointService interface {
	Create(ctx context.Context, req *dto.CreateCheckpointRequest) (*dto.CheckpointResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CheckpointResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCheckpointRequest) (*dto.CheckpointResponse, error)
	Delete(ctx context.Context, id string) error
	ListByFactory(ctx context.Context, factoryCode string) ([]dto.CheckpointResponse, error)
}

type checkpointService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCheckpointService creates a CheckpointService instance.
func NewCheckpointService(repo *repository.Repository, logger *zap.Logger) CheckpointService {
	return &checkpointService{repo: repo, logger: logger}
}

func (s *checkpointService) Create(ctx context.Context, req *dto.CreateCheckpointRequest) (*dto.CheckpointResponse, error) {
	// the owning factory must exist
	if _, err := s.repo.Factory.GetByCode(ctx, req.FactoryCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ErrFactoryNotFound
		}
		return nil, err
	}

	if _, err := s.repo.Checkpoint.GetByID(ctx, req.CheckpointID); err == nil {
		return nil, ErrCheckpointExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cp := &model.Checkpoint{
		CheckpointID: req.CheckpointID,
		Label:        req.Label,
		FactoryCode:  req.FactoryCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Floor:        req.Floor,
		Area:         req.Area,
		RiskLevel:    req.RiskLevel,
		IsActive:     true,
	}

	if err := s.repo.Checkpoint.Create(ctx, cp); err != nil {
		s.logger.Error("create checkpoint failed", zap.String("id", req.CheckpointID), zap.Error(err))
		return nil, err
	}

	resp := toCheckpointResponse(cp)
	return &resp, nil
}

func (s *checkpointService) GetByID(ctx context.Context, id string) (*dto.CheckpointResponse, error) {
	cp, err := s.repo.Checkpoint.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCheckpointNotFound
		}
		return nil, err
	}
	resp := toCheckpointResponse(cp)
	return &resp, nil
}

func (s *checkpointService) Update(ctx context.Context, id string, req *dto.UpdateCheckpointRequest) (*dto.CheckpointResponse, error) {
	cp, err := s.repo.Checkpoint.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCheckpointNotFound
		}
		return nil, err
	}

	if req.Label != nil {
		cp.Label = *req.Label
	}
	if req.Latitude != nil {
		cp.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		cp.Longitude = req.Longitude
	}
	if req.Floor != nil {
		cp.Floor = *req.Floor
	}
	if req.Area != nil {
		cp.Area = *req.Area
	}
	if req.RiskLevel != nil {
		cp.RiskLevel = *req.RiskLevel
	}
	if req.IsActive != nil {
		cp.IsActive = *req.IsActive
	}

	if err := s.repo.Checkpoint.Update(ctx, cp); err != nil {
		s.logger.Error("update checkpoint failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toCheckpointResponse(cp)
	return &resp, nil
}

func (s *checkpointService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Checkpoint.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCheckpointNotFound
		}
		return err
	}
	return s.repo.Checkpoint.Delete(ctx, id)
}

func (s *checkpointService) ListByFactory(ctx context.Context, factoryCode string) ([]dto.CheckpointResponse, error) {
	cps, err := s.repo.Checkpoint.ListByFactory(ctx, factoryCode)
	if err != nil {
		s.logger.Error("list checkpoints failed", zap.String("factory", factoryCode), zap.Error(err))
		return nil, err
	}

	resps := make([]dto.CheckpointResponse, 0, len(cps))
	for i := range cps {
		resps = append(resps, toCheckpointResponse(&cps[i]))
	}
	return resps, nil
}

func toCheckpointResponse(cp *model.Checkpoint) dto.CheckpointResponse {
	return dto.CheckpointResponse{
		CheckpointID: cp.CheckpointID,
		Label:        cp.Label,
		FactoryCode:  cp.FactoryCode,
		Latitude:     cp.Latitude,
		Longitude:    cp.Longitude,
		Floor:        cp.Floor,
		Area:         cp.Area,
		RiskLevel:    cp.RiskLevel,
		IsActive:     cp.IsActive,
	}
}
