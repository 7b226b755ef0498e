package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davidly-empire/security-verifier-server/internal/dto"
	"github.com/davidly-empire/security-verifier-server/internal/service"
	"github.com/davidly-empire/security-verifier-server/pkg/response"
)

// AuthHandler serves /auth endpoints.
type AuthHandler struct {
	svc    service.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	token, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, 20001, "invalid email or password")
		case errors.Is(err, service.ErrAccountDisabled):
			response.Forbidden(c, 20002, "account disabled")
		default:
			h.logger.Error("login failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.OK(c, token)
}

// Refresh POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	token, err := h.svc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, 20003, "refresh token invalid or revoked")
		case errors.Is(err, service.ErrAccountDisabled):
			response.Forbidden(c, 20002, "account disabled")
		case errors.Is(err, service.ErrUserNotFound):
			response.Unauthorized(c, 20003, "refresh token invalid or revoked")
		default:
			h.logger.Error("token refresh failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.OK(c, token)
}

// Logout POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), currentTokenJTI(c), currentTokenExpiry(c)); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Me GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.GetCurrentUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20004, "user not found")
			return
		}
		h.logger.Error("load current user failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, user)
}

// ChangePassword PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	err := h.svc.ChangePassword(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongOldPassword):
			response.BadRequest(c, 20005, "old password incorrect")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20004, "user not found")
		default:
			h.logger.Error("change password failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}
