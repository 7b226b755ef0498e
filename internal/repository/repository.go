package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User        UserRepository
	Factory     FactoryRepository
	Checkpoint  CheckpointRepository
	Scan        ScanRepository
	ReportAudit ReportAuditRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepo(db),
		Factory:     NewFactoryRepo(db),
		Checkpoint:  NewCheckpointRepo(db),
		Scan:        NewScanRepo(db),
		ReportAudit: NewReportAuditRepo(db),
	}
}
