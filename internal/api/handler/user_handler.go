package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davidly-empire/security-verifier-server/internal/dto"
	"github.com/davidly-empire/security-verifier-server/internal/service"
	"github.com/davidly-empire/security-verifier-server/pkg/response"
)

// UserHandler serves /users endpoints (admin only).
type UserHandler struct {
	svc    service.UserService
	logger *zap.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger}
}

// Create POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	user, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.BadRequest(c, 21001, "email already registered")
			return
		}
		h.logger.Error("create user failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.Created(c, user)
}

// Get GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 21002, "user not found")
			return
		}
		h.logger.Error("get user failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, user)
}

// Update PUT /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	user, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 21002, "user not found")
			return
		}
		h.logger.Error("update user failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, user)
}

// Delete DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 21002, "user not found")
			return
		}
		h.logger.Error("delete user failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// List GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	var req dto.UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}

	users, total, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("list users failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OKPage(c, users, total, req.Page, req.PageSize)
}
