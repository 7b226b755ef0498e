package dto

import "time"

// ── guard compliance ──

// MissedRound one expected checkpoint the guard never hit.
type MissedRound struct {
	ExpectedTime string `json:"expected_time"` // HH:MM site-local
	Status       string `json:"status"`
}

// GuardComplianceResponse per-guard per-day compliance statistics.
type GuardComplianceResponse struct {
	GuardName     string        `json:"guard_name"`
	ReportDate    string        `json:"report_date"`
	TotalExpected int           `json:"total_expected"`
	OnTimeCount   int           `json:"on_time_count"`
	MissedCount   int           `json:"missed_count"`
	Efficiency    float64       `json:"efficiency"`
	MissedDetails []MissedRound `json:"missed_details"`
}

// ── factory round report ──

// RoundRow one (checkpoint, round) cell of the round table.
type RoundRow struct {
	CheckpointLabel string     `json:"checkpoint_label"`
	Round           int        `json:"round"`
	ScanTime        *time.Time `json:"scan_time"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	GuardName       *string    `json:"guard_name"`
	Status          string     `json:"status"`
}

// RoundReportResponse the full factory round table for one day.
type RoundReportResponse struct {
	FactoryCode    string     `json:"factory_code"`
	FactoryName    string     `json:"factory_name"`
	FactoryAddress string     `json:"factory_address,omitempty"`
	ReportDate     string     `json:"report_date"`
	GeneratedAt    time.Time  `json:"generated_at"`
	AuditID        string     `json:"audit_id,omitempty"`
	Filename       string     `json:"filename,omitempty"`
	Rows           []RoundRow `json:"data"`
}

// ── status recompute ──

// RecomputeRequest body for the status recompute batch.
type RecomputeRequest struct {
	Date string `json:"date" binding:"required"`
}

// RecomputeResponse batch outcome counters. UpdatedCount < TotalProcessed
// signals partial failure; FailedCount carries the difference explicitly.
type RecomputeResponse struct {
	TotalExpected  int `json:"total_expected_rounds"`
	TotalProcessed int `json:"total_scans_processed"`
	UpdatedCount   int `json:"updated_count"`
	FailedCount    int `json:"failed_count"`
}

// ── patrol activity (gap-inferred rounds) ──

// PatrolRecord one scan inside an inferred round.
type PatrolRecord struct {
	GuardName       string    `json:"guard_name"`
	PatrolTime      time.Time `json:"patrol_time"`
	CheckpointLabel string    `json:"checkpoint_label"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
}

// PatrolRound one contiguous patrol round inferred from scan gaps.
type PatrolRound struct {
	SerialNo  int            `json:"s_no"`
	StartTime time.Time      `json:"start_time"`
	EndTime   time.Time      `json:"end_time"`
	Records   []PatrolRecord `json:"records"`
}

// PatrolActivityResponse the gap-inferred round report for one factory day.
type PatrolActivityResponse struct {
	FactoryCode string        `json:"factory_code"`
	FactoryName string        `json:"factory_name"`
	ReportDate  string        `json:"report_date"`
	GeneratedAt time.Time     `json:"generated_at"`
	Rounds      []PatrolRound `json:"rounds"`
}
