package dto

// CheckpointResponse public view of a QR checkpoint.
type CheckpointResponse struct {
	CheckpointID string   `json:"checkpoint_id"`
	Label        string   `json:"label"`
	FactoryCode  string   `json:"factory_code"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Floor        string   `json:"floor,omitempty"`
	Area         string   `json:"area,omitempty"`
	RiskLevel    string   `json:"risk_level,omitempty"`
	IsActive     bool     `json:"is_active"`
}

// CreateCheckpointRequest new checkpoint payload.
type CreateCheckpointRequest struct {
	CheckpointID string   `json:"checkpoint_id" binding:"required,max=40"`
	Label        string   `json:"label" binding:"required,max=100"`
	FactoryCode  string   `json:"factory_code" binding:"required,max=20"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Floor        string   `json:"floor" binding:"omitempty,max=40"`
	Area         string   `json:"area" binding:"omitempty,max=60"`
	RiskLevel    string   `json:"risk_level" binding:"omitempty,oneof=low medium high"`
}

// UpdateCheckpointRequest partial update; nil fields are left untouched.
type UpdateCheckpointRequest struct {
	Label     *string  `json:"label" binding:"omitempty,max=100"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Floor     *string  `json:"floor" binding:"omitempty,max=40"`
	Area      *string  `json:"area" binding:"omitempty,max=60"`
	RiskLevel *string  `json:"risk_level" binding:"omitempty,oneof=low medium high"`
	IsActive  *bool    `json:"is_active"`
}
