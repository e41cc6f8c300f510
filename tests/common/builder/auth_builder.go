//go:build unit || e2e

package builder

import (
	reqdto "stablebook/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email        string
	Password     string
	Name         string
	ReferralCode *string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "rider@example.com",
		Password: "password123",
		Name:     "Test Rider",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithReferralCode(code string) *AuthBuilder {
	a.ReferralCode = &code
	return a
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Email:        a.Email,
		Password:     a.Password,
		Name:         a.Name,
		ReferralCode: a.ReferralCode,
	}
}
