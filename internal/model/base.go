package model

import "time"

// BaseModel holds the audit timestamps shared by all persisted records.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
