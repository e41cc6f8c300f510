package commands

import (
	"context"
	"errors"

	"stablebook/internal/domain/account"
	"stablebook/internal/domain/loyalty"
	"stablebook/internal/infra"
	"stablebook/internal/pkg/errs"
	"stablebook/internal/pkg/jwt"
	"stablebook/internal/pkg/password"
	"stablebook/internal/pkg/refcode"
	"stablebook/internal/usecase/queries"
	"stablebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyExists = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrSignupFailed       = errs.New("signup failed")
	errReferralCodeTaken  = errs.New("generated referral code collided")
)

type SignupRequest struct {
	Email        string
	Password     string
	Name         string
	ReferralCode *string
}

type SignupResult struct {
	AccountID uuid.UUID
	Token     string
}

type LoginResult struct {
	AccountID uuid.UUID
	Role      string
	Token     string
}

type AuthCommands interface {
	Signup(ctx context.Context, req SignupRequest) (*SignupResult, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	uow          shared.UnitOfWork
	accountStore queries.AccountReadStore
	jwtService   *jwt.Service
}

func NewAuthUseCase(uow shared.UnitOfWork, accountStore queries.AccountReadStore, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{uow: uow, accountStore: accountStore, jwtService: jwtService}
}

// Signup creates the account, posts the signup bonus, and resolves the
// optional referral code. The account row, its ledger entries, and the
// referrer's bonus all commit in one transaction.
func (uc *authUseCaseImpl) Signup(ctx context.Context, req SignupRequest) (*SignupResult, error) {
	email, err := account.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// Generated codes collide with vanishing probability; the unique index
	// catches the rest and we retry with a fresh code.
	const maxCodeAttempts = 3

	var createdID uuid.UUID
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		id, err := uc.trySignup(ctx, email, hash, req.Name, req.ReferralCode)
		if err == nil {
			createdID = id
			break
		}
		if errors.Is(err, errReferralCodeTaken) && attempt < maxCodeAttempts-1 {
			continue
		}
		return nil, err
	}

	token, err := uc.jwtService.GenerateToken(createdID, account.RoleUser)
	if err != nil {
		return nil, errs.Mark(err, ErrSignupFailed)
	}

	return &SignupResult{AccountID: createdID, Token: token}, nil
}

func (uc *authUseCaseImpl) trySignup(ctx context.Context, email account.Email, hash, name string, referral *string) (uuid.UUID, error) {
	rawCode, err := refcode.New()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrSignupFailed)
	}
	code, err := account.NewReferralCode(rawCode)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrSignupFailed)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, _, err := uc.accountStore.FindByEmail(ctx, email.Value()); err == nil {
			return ErrEmailAlreadyExists
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		referrer, err := uc.resolveReferrer(ctx, tx, referral)
		if err != nil {
			return err
		}

		var referredBy *uuid.UUID
		if referrer != nil {
			referredBy = &referrer.ID
		}

		acc := account.NewAccount(email, hash, name, account.RoleUser, code, referredBy)
		if err := tx.Accounts().Create(ctx, tx.DB(), acc); err != nil {
			// The pre-check above raced with another signup for the same email.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailAlreadyExists
			}
			if infra.IsKind(err, infra.KindConflict) {
				return errReferralCodeTaken
			}
			return err
		}
		createdID = acc.ID()

		if err := postEntry(ctx, tx, acc.ID(), loyalty.SignupBonusPoints, loyalty.KindSignupBonus, "signup bonus", nil, nil); err != nil {
			return err
		}

		if referrer != nil {
			if err := postEntry(ctx, tx, acc.ID(), loyalty.ReferralBonusPoints, loyalty.KindReferralBonus, "referred by "+referrer.ReferralCode, nil, nil); err != nil {
				return err
			}
			if err := postEntry(ctx, tx, referrer.ID, loyalty.ReferralBonusPoints, loyalty.KindReferralBonus, "referral of "+email.Value(), nil, nil); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return createdID, nil
}

// resolveReferrer looks up the referral code. An unknown code is ignored
// rather than failing the signup.
func (uc *authUseCaseImpl) resolveReferrer(ctx context.Context, tx shared.Tx, referral *string) (*shared.AccountSnapshot, error) {
	if referral == nil || *referral == "" {
		return nil, nil
	}

	code, err := account.NewReferralCode(*referral)
	if err != nil {
		return nil, nil
	}

	referrer, err := tx.Reads().AccountByReferralCode(ctx, code.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return referrer, nil
}

func (uc *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	normalized, err := account.NewEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	view, hash, err := uc.accountStore.FindByEmail(ctx, normalized.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(hash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := account.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	token, err := uc.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}

	return &LoginResult{AccountID: view.ID, Role: view.Role, Token: token}, nil
}

// postEntry pairs a ledger append with the balance update. Every point
// movement in the system goes through here or an inlined equivalent.
func postEntry(ctx context.Context, tx shared.Tx, accountID uuid.UUID, amount int64, kind loyalty.Kind, description string, bookingID, rewardID *uuid.UUID) error {
	entry, err := loyalty.NewEntry(accountID, amount, kind, description, bookingID, rewardID)
	if err != nil {
		return err
	}
	if err := tx.Ledger().Append(ctx, tx.DB(), entry); err != nil {
		return err
	}
	if _, err := tx.Accounts().AddPoints(ctx, tx.DB(), accountID, amount); err != nil {
		return err
	}
	return nil
}
