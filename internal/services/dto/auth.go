package dto

import (
	"fixnow_backend/internal/models"
)

type RegisterRequest struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role" validate:"required,oneof=CLIENT PROVIDER"`
}

type RegisterResponse struct {
	OK                bool   `json:"ok"`
	NeedsVerification bool   `json:"needsVerification"`
	Message           string `json:"message"`
	VerifyLink        string `json:"verifyLink"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResendVerificationResponse struct {
	OK         bool   `json:"ok"`
	Message    string `json:"message"`
	VerifyLink string `json:"verifyLink,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	OK    bool    `json:"ok"`
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// VerifyStatus is the outcome communicated to the frontend via the
// ?status= query parameter of the redirect.
type VerifyStatus string

const (
	VerifyStatusOK      VerifyStatus = "ok"
	VerifyStatusAlready VerifyStatus = "already"
	VerifyStatusExpired VerifyStatus = "expired"
)
