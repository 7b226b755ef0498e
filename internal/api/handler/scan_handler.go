package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davidly-empire/security-verifier-server/internal/dto"
	"github.com/davidly-empire/security-verifier-server/internal/service"
	"github.com/davidly-empire/security-verifier-server/pkg/response"
)

// ScanHandler serves /scans endpoints.
type ScanHandler struct {
	svc    service.ScanService
	logger *zap.Logger
}

// NewScanHandler creates a ScanHandler.
func NewScanHandler(svc service.ScanService, logger *zap.Logger) *ScanHandler {
	return &ScanHandler{svc: svc, logger: logger}
}

// Create POST /api/v1/scans
func (h *ScanHandler) Create(c *gin.Context) {
	var req dto.CreateScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	scan, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidScanTime) {
			response.BadRequest(c, 24001, "invalid scan timestamp")
			return
		}
		h.logger.Error("create scan failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.Created(c, scan)
}

// List GET /api/v1/scans
func (h *ScanHandler) List(c *gin.Context) {
	var req dto.ScanListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	scans, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, pkgErrInvalidDate) {
			response.BadRequest(c, 24002, "invalid date, expected YYYY-MM-DD")
			return
		}
		h.logger.Error("list scans failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, scans)
}

// Delete DELETE /api/v1/scans/:id
func (h *ScanHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, 10001, "invalid scan id")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrScanNotFound) {
			response.NotFound(c, 24003, "scan event not found")
			return
		}
		h.logger.Error("delete scan failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
