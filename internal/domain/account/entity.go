package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is a customer or staff identity with a loyalty point balance.
// The balance is a materialized cache of the point ledger: it is only ever
// mutated in the same transaction as a ledger append, so Points() always
// equals the sum of the account's ledger entries.
type Account struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	name         string
	role         Role
	points       int64
	referralCode ReferralCode
	referredBy   *uuid.UUID // set once at creation, immutable afterwards
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAccount(email Email, passwordHash, name string, role Role, referralCode ReferralCode, referredBy *uuid.UUID) *Account {
	return &Account{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		role:         role,
		points:       0,
		referralCode: referralCode,
		referredBy:   referredBy,
	}
}

func ReconstructAccount(
	id uuid.UUID,
	email Email,
	passwordHash, name string,
	role Role,
	points int64,
	referralCode ReferralCode,
	referredBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Account {
	return &Account{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		role:         role,
		points:       points,
		referralCode: referralCode,
		referredBy:   referredBy,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (a *Account) ID() uuid.UUID              { return a.id }
func (a *Account) Email() Email               { return a.email }
func (a *Account) PasswordHash() string       { return a.passwordHash }
func (a *Account) Name() string               { return a.name }
func (a *Account) Role() Role                 { return a.role }
func (a *Account) Points() int64              { return a.points }
func (a *Account) ReferralCode() ReferralCode { return a.referralCode }
func (a *Account) ReferredBy() *uuid.UUID     { return a.referredBy }
func (a *Account) CreatedAt() time.Time       { return a.createdAt }
func (a *Account) UpdatedAt() time.Time       { return a.updatedAt }

func (a *Account) CanAfford(cost int64) bool {
	return a.points >= cost
}
