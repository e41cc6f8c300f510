package response

import (
	"github.com/google/uuid"
)

type AuthResponse struct {
	AccountID   uuid.UUID `json:"account_id"`
	AccessToken string    `json:"access_token"`
}
