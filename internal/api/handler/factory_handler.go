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

// FactoryHandler serves /factories endpoints.
type FactoryHandler struct {
	svc    service.FactoryService
	logger *zap.Logger
}

// NewFactoryHandler creates a FactoryHandler.
func NewFactoryHandler(svc service.FactoryService, logger *zap.Logger) *FactoryHandler {
	return &FactoryHandler{svc: svc, logger: logger}
}

// Create POST /api/v1/factories
func (h *FactoryHandler) Create(c *gin.Context) {
	var req dto.CreateFactoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	factory, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrFactoryExists) {
			response.BadRequest(c, 22001, "factory code already in use")
			return
		}
		h.logger.Error("create factory failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.Created(c, factory)
}

// Get GET /api/v1/factories/:code
func (h *FactoryHandler) Get(c *gin.Context) {
	factory, err := h.svc.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, pkgerrors.ErrFactoryNotFound) {
			response.NotFound(c, 22002, "factory not found")
			return
		}
		h.logger.Error("get factory failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, factory)
}

// Update PUT /api/v1/factories/:code
func (h *FactoryHandler) Update(c *gin.Context) {
	var req dto.UpdateFactoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	factory, err := h.svc.Update(c.Request.Context(), c.Param("code"), &req)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrFactoryNotFound) {
			response.NotFound(c, 22002, "factory not found")
			return
		}
		h.logger.Error("update factory failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, factory)
}

// Delete DELETE /api/v1/factories/:code
func (h *FactoryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("code")); err != nil {
		if errors.Is(err, pkgerrors.ErrFactoryNotFound) {
			response.NotFound(c, 22002, "factory not found")
			return
		}
		h.logger.Error("delete factory failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// List GET /api/v1/factories
func (h *FactoryHandler) List(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	factories, err := h.svc.List(c.Request.Context(), includeInactive)
	if err != nil {
		h.logger.Error("list factories failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, factories)
}
