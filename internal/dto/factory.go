package dto

// FactoryResponse public view of a factory.
type FactoryResponse struct {
	FactoryCode    string `json:"factory_code"`
	FactoryName    string `json:"factory_name"`
	FactoryAddress string `json:"factory_address,omitempty"`
	IsActive       bool   `json:"is_active"`
}

// CreateFactoryRequest new factory payload.
type CreateFactoryRequest struct {
	FactoryCode    string `json:"factory_code" binding:"required,max=20"`
	FactoryName    string `json:"factory_name" binding:"required,max=100"`
	FactoryAddress string `json:"factory_address" binding:"omitempty,max=255"`
}

// UpdateFactoryRequest partial update; nil fields are left untouched.
type UpdateFactoryRequest struct {
	FactoryName    *string `json:"factory_name" binding:"omitempty,max=100"`
	FactoryAddress *string `json:"factory_address" binding:"omitempty,max=255"`
	IsActive       *bool   `json:"is_active"`
}
