package dto

// UserResponse public view of a user account.
type UserResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	FactoryCode string `json:"factory_code,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// CreateUserRequest admin-created account payload.
type CreateUserRequest struct {
	FullName    string `json:"full_name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required,oneof=admin supervisor guard"`
	FactoryCode string `json:"factory_code" binding:"omitempty,max=20"`
}

// UpdateUserRequest partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	FullName    *string `json:"full_name" binding:"omitempty,max=100"`
	Role        *string `json:"role" binding:"omitempty,oneof=admin supervisor guard"`
	FactoryCode *string `json:"factory_code" binding:"omitempty,max=20"`
	IsActive    *bool   `json:"is_active"`
}

// UserListRequest list query parameters.
type UserListRequest struct {
	Role     string `form:"role" binding:"omitempty,oneof=admin supervisor guard"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}
