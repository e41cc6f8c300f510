package request

import (
	"stablebook/internal/usecase/commands"
)

type SignupRequest struct {
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=8"`
	Name         string  `json:"name" binding:"required"`
	ReferralCode *string `json:"referral_code,omitempty"`
}

func (r *SignupRequest) ToCommand() commands.SignupRequest {
	return commands.SignupRequest{
		Email:        r.Email,
		Password:     r.Password,
		Name:         r.Name,
		ReferralCode: r.ReferralCode,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
