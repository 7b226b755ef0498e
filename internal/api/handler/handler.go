package handler

import (
	"go.uber.org/zap"

	"github.com/davidly-empire/security-verifier-server/internal/service"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Factory    *FactoryHandler
	Checkpoint *CheckpointHandler
	Scan       *ScanHandler
	Report     *ReportHandler
	Export     *ExportHandler
}

// NewHandler wires the handlers to their services.
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth, logger),
		User:       NewUserHandler(svc.User, logger),
		Factory:    NewFactoryHandler(svc.Factory, logger),
		Checkpoint: NewCheckpointHandler(svc.Checkpoint, logger),
		Scan:       NewScanHandler(svc.Scan, logger),
		Report:     NewReportHandler(svc.Compliance, svc.Report, logger),
		Export:     NewExportHandler(svc.Export, logger),
	}
}
