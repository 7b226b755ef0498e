package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davidly-empire/security-verifier-server/internal/service"
	pkgerrors "github.com/davidly-empire/security-verifier-server/pkg/errors"
	"github.com/davidly-empire/security-verifier-server/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves /exports endpoints.
type ExportHandler struct {
	svc    service.ExportService
	logger *zap.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(svc service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, logger: logger}
}

// RoundReportXLSX GET /api/v1/exports/rounds?factory_code=&date=
func (h *ExportHandler) RoundReportXLSX(c *gin.Context) {
	factoryCode := c.Query("factory_code")
	date := c.Query("date")
	if factoryCode == "" || date == "" {
		response.BadRequest(c, 26001, "factory_code and date are required")
		return
	}

	caller := service.ReportCaller{UserID: currentUserID(c)}
	buf, filename, err := h.svc.ExportRoundReport(c.Request.Context(), factoryCode, date, caller)
	if err != nil {
		switch {
		case errors.Is(err, pkgErrInvalidDate):
			response.BadRequest(c, 26002, "invalid date, expected YYYY-MM-DD")
		case errors.Is(err, pkgerrors.ErrFactoryNotFound):
			response.NotFound(c, 26003, "factory not found")
		default:
			h.logger.Error("xlsx export failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ScheduleICS GET /api/v1/exports/schedule.ics?date=
func (h *ExportHandler) ScheduleICS(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, 26001, "date is required")
		return
	}

	buf, filename, err := h.svc.ExportScheduleICS(date)
	if err != nil {
		if errors.Is(err, pkgErrInvalidDate) {
			response.BadRequest(c, 26002, "invalid date, expected YYYY-MM-DD")
			return
		}
		h.logger.Error("ics export failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}
