package response

import (
	"time"

	"hotel-booking-api/internal/usecase"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

func FromUserView(v *usecase.UserView) UserResponse {
	return UserResponse{
		ID:        v.ID,
		Username:  v.Username,
		CreatedAt: v.CreatedAt,
	}
}

func FromLoginResult(r *usecase.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: r.AccessToken,
		User: UserResponse{
			ID:       r.UserID,
			Username: r.Username,
		},
	}
}
