package model

// User is a security personnel or back-office account, table users.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	FullName     string `gorm:"type:varchar(100);not null"                     json:"full_name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'guard'"      json:"role"` // admin | supervisor | guard
	FactoryCode  string `gorm:"type:varchar(20)"                               json:"factory_code,omitempty"`
	IsActive     bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
