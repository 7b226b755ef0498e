package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/davidly-empire/security-verifier-server/internal/dto"
	"github.com/davidly-empire/security-verifier-server/internal/model"
	"github.com/davidly-empire/security-verifier-server/internal/repository"
)

var ErrEmailTaken = errors.New("email already registered")

// UserService manages accounts for guards, supervisors and admins.
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req *dto.UserListRequest) ([]dto.UserResponse, int64, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates a UserService instance.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		FactoryCode:  req.FactoryCode,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("create user failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.FactoryCode != nil {
		user.FactoryCode = *req.FactoryCode
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.repo.User.Delete(ctx, id)
}

func (s *userService) List(ctx context.Context, req *dto.UserListRequest) ([]dto.UserResponse, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	users, total, err := s.repo.User.List(ctx, req.Role, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, 0, err
	}

	resps := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resps = append(resps, toUserResponse(&users[i]))
	}
	return resps, total, nil
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.UserID,
		FullName:    user.FullName,
		Email:       user.Email,
		Role:        user.Role,
		FactoryCode: user.FactoryCode,
		IsActive:    user.IsActive,
	}
}
