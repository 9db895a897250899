package dto

import (
	"fmt"
	"time"

	"notifyhub/internal/http-api/models"
)

// RegisterUserRequest: payload for user self-registration. Password policy
// (length bounds) is enforced by the user service, not by binding tags.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,min=3"`
	Password string `json:"password" binding:"required"`
}

// UserResponse: client-facing user representation; the password hash is
// never part of it.
type UserResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creation_date"`
	URL          string    `json:"url"`
}

func FromUserModel(m models.User, base string) UserResponse {
	return UserResponse{
		ID:           m.ID,
		Name:         m.Name,
		CreationDate: m.CreationDate,
		URL:          fmt.Sprintf("%s/users/%d", base, m.ID),
	}
}
