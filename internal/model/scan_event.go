package model

import "time"

// Compliance statuses persisted on scan events and emitted in reports.
// SUCCESS / LATE / MISSED is the canonical set; legacy aliases (FAILED,
// ON_TIME, completed, done) are normalized at the boundary, never stored.
const (
	StatusSuccess = "SUCCESS"
	StatusLate    = "LATE"
	StatusMissed  = "MISSED"
)

// NormalizeStatus maps legacy status labels onto the canonical set.
// Unknown or empty values map to MISSED.
func NormalizeStatus(raw string) string {
	switch raw {
	case StatusSuccess, "ON_TIME", "COMPLETED", "DONE", "success", "on_time", "completed", "done":
		return StatusSuccess
	case StatusLate, "late":
		return StatusLate
	default:
		return StatusMissed
	}
}

// ScanEvent is one QR scan reported by the mobile client, table scan_events.
// Immutable once ingested except for Status, which the compliance engine
// recomputes from the patrol schedule.
type ScanEvent struct {
	ID              int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	GuardName       string     `gorm:"type:varchar(100);index:idx_scan_events_guard_time" json:"guard_name"`
	GuardID         *string    `gorm:"type:uuid" json:"guard_id,omitempty"`
	CheckpointID    string     `gorm:"type:varchar(40)"  json:"checkpoint_id"`
	CheckpointLabel string     `gorm:"type:varchar(100)" json:"checkpoint_label"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	ScanTime        time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_scan_events_guard_time" json:"scan_time"`
	RoundSlot       *time.Time `json:"round_slot,omitempty"` // expected slot boundary the client scanned against, when known
	Status          string     `gorm:"type:varchar(20)" json:"status,omitempty"`
	FactoryCode     string     `gorm:"type:varchar(20);index" json:"factory_code"`
	CreatedAt       time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the table name.
func (ScanEvent) TableName() string { return "scan_events" }
