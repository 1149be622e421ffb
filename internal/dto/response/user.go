package response

import (
	"time"

	"account-service/internal/data/entity"
)

type ProfileResponse struct {
	ID        string          `json:"id"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Role      entity.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	LastLogin *time.Time      `json:"last_login,omitempty"`
	Token     string          `json:"token"`
}

// ProfileToResponse builds the profile view, the hashed password never leaves
func ProfileToResponse(user *entity.User, token string) *ProfileResponse {
	return &ProfileResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
		Token:     token,
	}
}
