package response

import (
	"media-watchlist/internal/data/entity"
)

type UserResponse struct {
	UserID      int64  `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	ProfileName string `json:"profile_name"`
}

// Helper converter
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		UserID:      user.UserID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		ProfileName: user.ProfileName,
	}
}
