package model

// Checkpoint is a QR scan point mounted inside a factory, table checkpoints.
// CheckpointID is the value encoded in the printed QR code.
type Checkpoint struct {
	CheckpointID string   `gorm:"type:varchar(40);primaryKey"  json:"checkpoint_id"`
	Label        string   `gorm:"type:varchar(100);not null"   json:"label"`
	FactoryCode  string   `gorm:"type:varchar(20);not null;index" json:"factory_code"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Floor        string   `gorm:"type:varchar(40)"  json:"floor,omitempty"`
	Area         string   `gorm:"type:varchar(60)"  json:"area,omitempty"`
	RiskLevel    string   `gorm:"type:varchar(20)"  json:"risk_level,omitempty"`
	IsActive     bool     `gorm:"not null;default:true" json:"is_active"`
	BaseModel

	Factory *Factory `gorm:"foreignKey:FactoryCode;references:FactoryCode" json:"factory,omitempty"`
}

// TableName sets the table name.
func (Checkpoint) TableName() string { return "checkpoints" }
