package dto

import (
	"fixnow_backend/internal/models"
)

type UserDTO struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Role          models.UserRole `json:"role"`
	EmailVerified bool            `json:"emailVerified"`
	AvatarURL     string          `json:"avatarUrl"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
		AvatarURL:     u.AvatarURL,
	}
}

// UpdateMeRequest carries the optional profile changes; empty fields are
// left untouched.
type UpdateMeRequest struct {
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
	Password  string  `json:"password" validate:"omitempty,min=6"`
}
