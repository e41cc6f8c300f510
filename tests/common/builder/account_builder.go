//go:build unit || e2e

package builder

import (
	"time"

	"stablebook/internal/domain/account"
	"stablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AccountBuilder struct {
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Points       int64
	ReferralCode string
	ReferredBy   *uuid.UUID
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		Email:        "rider@example.com",
		PasswordHash: "hashed_password",
		Name:         "Test Rider",
		Role:         "user",
		Points:       100,
		ReferralCode: "ABCD2345",
	}
}

func (a *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(a)
	return a
}

func (a *AccountBuilder) BuildDomain() (*account.Account, error) {
	email, err := account.NewEmail(a.Email)
	if err != nil {
		return nil, err
	}

	role, err := account.NewRole(a.Role)
	if err != nil {
		return nil, err
	}

	code, err := account.NewReferralCode(a.ReferralCode)
	if err != nil {
		return nil, err
	}

	return account.NewAccount(email, a.PasswordHash, a.Name, role, code, a.ReferredBy), nil
}

func (a *AccountBuilder) BuildView() *queries.AccountView {
	return &queries.AccountView{
		ID:           uuid.New(),
		Email:        a.Email,
		Name:         a.Name,
		Role:         a.Role,
		Points:       a.Points,
		ReferralCode: a.ReferralCode,
		ReferredBy:   a.ReferredBy,
		CreatedAt:    time.Now(),
	}
}

func (a *AccountBuilder) BuildAuthorizedView() *queries.AuthorizedAccountView {
	return &queries.AuthorizedAccountView{
		ID:    uuid.New(),
		Email: a.Email,
		Role:  a.Role,
	}
}

func (a *AccountBuilder) WithEmail(email string) *AccountBuilder {
	a.Email = email
	return a
}

func (a *AccountBuilder) WithRole(role string) *AccountBuilder {
	a.Role = role
	return a
}

func (a *AccountBuilder) WithReferralCode(code string) *AccountBuilder {
	a.ReferralCode = code
	return a
}

func (a *AccountBuilder) WithPoints(points int64) *AccountBuilder {
	a.Points = points
	return a
}
