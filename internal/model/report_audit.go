package model

import "time"

// ReportAudit records one generated report, table report_audits.
// Keeps who pulled which report for which factory and day.
type ReportAudit struct {
	AuditID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"audit_id"`
	ReportType      string    `gorm:"type:varchar(40);not null"  json:"report_type"`
	FactoryCode     string    `gorm:"type:varchar(20);not null;index:idx_report_audits_factory_date" json:"factory_code"`
	ReportDate      time.Time `gorm:"type:date;not null;index:idx_report_audits_factory_date" json:"report_date"`
	GeneratedBy     *string   `gorm:"type:uuid" json:"generated_by,omitempty"`
	GeneratedByName string    `gorm:"type:varchar(100)" json:"generated_by_name,omitempty"`
	Filename        string    `gorm:"type:varchar(255)" json:"filename,omitempty"`
	GeneratedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"generated_at"`
}

// TableName sets the table name.
func (ReportAudit) TableName() string { return "report_audits" }
