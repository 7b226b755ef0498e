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

var pkgErrInvalidDate = pkgerrors.ErrInvalidDate

// ReportHandler serves /reports endpoints.
type ReportHandler struct {
	compliance service.ComplianceService
	reports    service.ReportService
	logger     *zap.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(compliance service.ComplianceService, reports service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{compliance: compliance, reports: reports, logger: logger}
}

// GuardCompliance GET /api/v1/reports/guard-compliance?guard_name=&date=
func (h *ReportHandler) GuardCompliance(c *gin.Context) {
	guardName := c.Query("guard_name")
	date := c.Query("date")
	if guardName == "" || date == "" {
		response.BadRequest(c, 25001, "guard_name and date are required")
		return
	}

	report, err := h.compliance.GetGuardCompliance(c.Request.Context(), guardName, date)
	if err != nil {
		if errors.Is(err, pkgErrInvalidDate) {
			response.BadRequest(c, 25002, "invalid date, expected YYYY-MM-DD")
			return
		}
		h.logger.Error("guard compliance report failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, report)
}

// FactoryRounds GET /api/v1/reports/rounds?factory_code=&date=
func (h *ReportHandler) FactoryRounds(c *gin.Context) {
	factoryCode := c.Query("factory_code")
	date := c.Query("date")
	if factoryCode == "" || date == "" {
		response.BadRequest(c, 25001, "factory_code and date are required")
		return
	}

	caller := service.ReportCaller{UserID: currentUserID(c)}
	report, err := h.reports.GetFactoryRoundReport(c.Request.Context(), factoryCode, date, caller)
	if err != nil {
		switch {
		case errors.Is(err, pkgErrInvalidDate):
			response.BadRequest(c, 25002, "invalid date, expected YYYY-MM-DD")
		case errors.Is(err, pkgerrors.ErrFactoryNotFound):
			response.NotFound(c, 25003, "factory not found")
		default:
			h.logger.Error("round report failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.OK(c, report)
}

// PatrolActivity GET /api/v1/reports/patrol-activity?factory_code=&date=
func (h *ReportHandler) PatrolActivity(c *gin.Context) {
	factoryCode := c.Query("factory_code")
	date := c.Query("date")
	if factoryCode == "" || date == "" {
		response.BadRequest(c, 25001, "factory_code and date are required")
		return
	}

	report, err := h.reports.GetPatrolActivity(c.Request.Context(), factoryCode, date)
	if err != nil {
		switch {
		case errors.Is(err, pkgErrInvalidDate):
			response.BadRequest(c, 25002, "invalid date, expected YYYY-MM-DD")
		case errors.Is(err, pkgerrors.ErrFactoryNotFound):
			response.NotFound(c, 25003, "factory not found")
		default:
			h.logger.Error("patrol activity report failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.OK(c, report)
}

// Recompute POST /api/v1/reports/recompute
func (h *ReportHandler) Recompute(c *gin.Context) {
	var req dto.RecomputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.compliance.RecomputeStatuses(c.Request.Context(), req.Date)
	if err != nil {
		if errors.Is(err, pkgErrInvalidDate) {
			response.BadRequest(c, 25002, "invalid date, expected YYYY-MM-DD")
			return
		}
		h.logger.Error("status recompute failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
