package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davidly-empire/security-verifier-server/internal/dto"
	"github.com/davidly-empire/security-verifier-server/internal/service"
	pkgerrors "github.com/davidly-empire/security-verifier-server/pkg/errors"
	"github.com/davidly-empire/security-verifier-server/pkg/response"
)

// CheckpointHandler serves /checkpoints endpoints.
type CheckpointHandler struct {
	svc    service.CheckpointService
	logger *zap.Logger
}

// NewCheckpointHandler creates a CheckpointHandler.
func NewCheckpointHandler(svc service.CheckpointService, logger *zap.Logger) *CheckpointHandler {
	return &CheckpointHandler{svc: svc, logger: logger}
}

// Create POST /api/v1/checkpoints
func (h *CheckpointHandler) Create(c *gin.Context) {
	var req dto.CreateCheckpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	cp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, pkgerrors.ErrFactoryNotFound):
			response.BadRequest(c, 23001, "owning factory not found")
		case errors.Is(err, service.ErrCheckpointExists):
			response.BadRequest(c, 23002, "checkpoint id already in use")
		default:
			h.logger.Error("create checkpoint failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.Created(c, cp)
}

// Get GET /api/v1/checkpoints/:id
func (h *CheckpointHandler) Get(c *gin.Context) {
	cp, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCheckpointNotFound) {
			response.NotFound(c, 23003, "checkpoint not found")
			return
		}
		h.logger.Error("get checkpoint failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, cp)
}

// Update PUT /api/v1/checkpoints/:id
func (h *CheckpointHandler) Update(c *gin.Context) {
	var req dto.UpdateCheckpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	cp, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrCheckpointNotFound) {
			response.NotFound(c, 23003, "checkpoint not found")
			return
		}
		h.logger.Error("update checkpoint failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, cp)
}

// Delete DELETE /api/v1/checkpoints/:id
func (h *CheckpointHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrCheckpointNotFound) {
			response.NotFound(c, 23003, "checkpoint not found")
			return
		}
		h.logger.Error("delete checkpoint failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ListByFactory GET /api/v1/factories/:code/checkpoints
func (h *CheckpointHandler) ListByFactory(c *gin.Context) {
	cps, err := h.svc.ListByFactory(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.logger.Error("list checkpoints failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, cps)
}
