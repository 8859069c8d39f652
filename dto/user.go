package dto

import (
	"time"

	"inkwell/models"
)

// UserProfileDTO is the /api/v1/users/profile response schema.
type UserProfileDTO struct {
	ID        string    `json:"id" example:"665f1c2ab8b4c53d1c0a9e10"`
	Email     string    `json:"email" example:"alice@example.com"`
	Name      string    `json:"name" example:"Alice Kim"`
	Username  string    `json:"username" example:"alice"`
	Image     string    `json:"image,omitempty" example:"https://example.com/avatar.png"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserProfileDTO constructs UserProfileDTO from models.User
func NewUserProfileDTO(u models.User) UserProfileDTO {
	return UserProfileDTO{
		ID:        u.ID.Hex(),
		Email:     u.Email,
		Name:      u.Name,
		Username:  u.Username,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
