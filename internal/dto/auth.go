package dto

import "github.com/vafabank/teller_app/internal/core/domain"

// LoginRequest carries the login form fields. The identifier is a userId or
// email for employees and a customerId or email for customers.
type LoginRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session token and enough profile data for the
// console to render its header.
type LoginResponse struct {
	Token    string      `json:"token"`
	Role     domain.Role `json:"role"`
	FullName string      `json:"fullName"`
	Subject  string      `json:"subject"` // userId or customerId
}
