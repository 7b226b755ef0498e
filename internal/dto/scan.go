package dto

import "time"

// CreateScanRequest payload from the mobile scanning client.
// ScanTime and RoundSlot accept ISO-8601 with a +05:30 offset or a UTC 'Z'
// suffix; the server normalizes both to the site timezone.
type CreateScanRequest struct {
	GuardName       string   `json:"guard_name" binding:"required,max=100"`
	CheckpointID    string   `json:"checkpoint_id" binding:"required,max=40"`
	CheckpointLabel string   `json:"checkpoint_label" binding:"omitempty,max=100"`
	FactoryCode     string   `json:"factory_code" binding:"required,max=20"`
	Latitude        *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	ScanTime        string   `json:"scan_time" binding:"omitempty"`
	RoundSlot       string   `json:"round_slot" binding:"omitempty"`
}

// ScanListRequest list query parameters.
type ScanListRequest struct {
	FactoryCode string `form:"factory_code" binding:"omitempty,max=20"`
	GuardName   string `form:"guard_name" binding:"omitempty,max=100"`
	Date        string `form:"date" binding:"omitempty"`
}

// ScanResponse public view of a scan event.
type ScanResponse struct {
	ID              int64      `json:"id"`
	GuardName       string     `json:"guard_name"`
	CheckpointID    string     `json:"checkpoint_id"`
	CheckpointLabel string     `json:"checkpoint_label,omitempty"`
	FactoryCode     string     `json:"factory_code"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	ScanTime        time.Time  `json:"scan_time"`
	RoundSlot       *time.Time `json:"round_slot,omitempty"`
	Status          string     `json:"status,omitempty"`
}
