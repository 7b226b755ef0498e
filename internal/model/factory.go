package model

// Factory is a monitored site, table factories.
// FactoryCode is the natural key used everywhere else (scans, checkpoints, users).
type Factory struct {
	FactoryCode    string `gorm:"type:varchar(20);primaryKey"  json:"factory_code"`
	FactoryName    string `gorm:"type:varchar(100);not null"   json:"factory_name"`
	FactoryAddress string `gorm:"type:varchar(255)"            json:"factory_address,omitempty"`
	IsActive       bool   `gorm:"not null;default:true"        json:"is_active"`
	BaseModel
}

// TableName sets the table name.
func (Factory) TableName() string { return "factories" }
