// Package dto defines the auth request and response bodies.
package dto

// LoginRequest is the login body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the admin-driven account creation body.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin manager sales_rep"`
	EmpID    string `json:"empID,omitempty"`
	Name     string `json:"name,omitempty"`
}

// LoginResponse carries the issued token and the account profile.
type LoginResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}
