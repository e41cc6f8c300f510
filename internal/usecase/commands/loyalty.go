package commands

import (
	"context"
	"fmt"

	"stablebook/internal/domain/booking"
	"stablebook/internal/domain/loyalty"
	"stablebook/internal/domain/reward"
	"stablebook/internal/infra"
	"stablebook/internal/pkg/config"
	"stablebook/internal/pkg/errs"
	"stablebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRewardNotFound      = errs.New("reward not found")
	ErrRewardInactive      = errs.New("reward is inactive")
	ErrRewardOutOfStock    = errs.New("reward out of stock")
	ErrInsufficientPoints  = errs.New("insufficient points")
	ErrNegativeBalance     = errs.New("adjustment would make balance negative")
	ErrAccountNotFound     = errs.New("account not found")
	ErrBookingNotCompleted = errs.New("booking is not completed")
	ErrBookingNotLinked    = errs.New("booking has no account")
	ErrInvalidAwardAmount  = errs.New("award amount must be positive")
)

type RedeemResult struct {
	GrantID    uuid.UUID
	NewBalance int64
}

type AdjustResult struct {
	NewBalance int64
}

type LoyaltyCommands interface {
	RedeemReward(ctx context.Context, accountID, rewardID uuid.UUID) (*RedeemResult, error)
	AdjustPoints(ctx context.Context, accountID uuid.UUID, delta int64, reason string, actorID uuid.UUID) (*AdjustResult, error)
	AwardBookingCompletion(ctx context.Context, bookingID uuid.UUID, points int64) (*AdjustResult, error)
}

type loyaltyUseCaseImpl struct {
	uow shared.UnitOfWork
	cfg config.LoyaltyConfig
}

func NewLoyaltyUseCase(uow shared.UnitOfWork, cfg config.LoyaltyConfig) LoyaltyCommands {
	return &loyaltyUseCaseImpl{uow: uow, cfg: cfg}
}

// RedeemReward spends points for a grant. The reward row lock, the
// balance re-read, the stock decrement, the debit, and the grant insert
// are one transaction; racing redemptions serialize on the row locks and
// the loser re-reads a state that no longer affords the redemption.
func (uc *loyaltyUseCaseImpl) RedeemReward(ctx context.Context, accountID, rewardID uuid.UUID) (*RedeemResult, error) {
	var result RedeemResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rw, err := tx.Reads().RewardForUpdate(ctx, rewardID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRewardNotFound
			}
			return err
		}
		if !rw.Active {
			return ErrRewardInactive
		}

		points, err := tx.Reads().AccountPointsForUpdate(ctx, accountID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAccountNotFound
			}
			return err
		}
		if points < rw.PointCost {
			return ErrInsufficientPoints
		}

		if rw.Stock != nil {
			if err := tx.Rewards().DecrementStock(ctx, tx.DB(), rewardID); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return ErrRewardOutOfStock
				}
				return err
			}
		}

		entry, err := loyalty.NewEntry(accountID, -rw.PointCost, loyalty.KindRewardRedeemed, "redeemed: "+rw.Title, nil, &rewardID)
		if err != nil {
			return err
		}
		if err := tx.Ledger().Append(ctx, tx.DB(), entry); err != nil {
			return err
		}

		balance, err := tx.Accounts().AddPoints(ctx, tx.DB(), accountID, -rw.PointCost)
		if err != nil {
			return err
		}

		grant := reward.NewGrant(accountID, rewardID)
		if err := tx.Grants().Create(ctx, tx.DB(), grant); err != nil {
			return err
		}

		result = RedeemResult{GrantID: grant.ID(), NewBalance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AdjustPoints posts a signed correction. The delta is applied as given,
// never clamped; when negative balances are disallowed the whole
// adjustment is rejected instead. The posting staff member is recorded
// in the ledger entry.
func (uc *loyaltyUseCaseImpl) AdjustPoints(ctx context.Context, accountID uuid.UUID, delta int64, reason string, actorID uuid.UUID) (*AdjustResult, error) {
	var result AdjustResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		points, err := tx.Reads().AccountPointsForUpdate(ctx, accountID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAccountNotFound
			}
			return err
		}
		if !uc.cfg.AllowNegativeAdjust && points+delta < 0 {
			return ErrNegativeBalance
		}

		description := fmt.Sprintf("%s (by %s)", reason, actorID)
		entry, err := loyalty.NewEntry(accountID, delta, loyalty.KindAdminAdjustment, description, nil, nil)
		if err != nil {
			return err
		}
		if err := tx.Ledger().Append(ctx, tx.DB(), entry); err != nil {
			return err
		}

		balance, err := tx.Accounts().AddPoints(ctx, tx.DB(), accountID, delta)
		if err != nil {
			return err
		}

		result = AdjustResult{NewBalance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AwardBookingCompletion posts the completion bonus for a finished
// booking. Deliberately not idempotent: posting twice is an operator
// error corrected with an adjustment entry.
func (uc *loyaltyUseCaseImpl) AwardBookingCompletion(ctx context.Context, bookingID uuid.UUID, points int64) (*AdjustResult, error) {
	if points <= 0 {
		return nil, ErrInvalidAwardAmount
	}

	var result AdjustResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if snap.Status != booking.StatusCompleted.String() {
			return ErrBookingNotCompleted
		}
		if snap.AccountID == nil {
			return ErrBookingNotLinked
		}

		entry, err := loyalty.NewEntry(*snap.AccountID, points, loyalty.KindBookingCompleted, "booking completed", &bookingID, nil)
		if err != nil {
			return err
		}
		if err := tx.Ledger().Append(ctx, tx.DB(), entry); err != nil {
			return err
		}

		balance, err := tx.Accounts().AddPoints(ctx, tx.DB(), *snap.AccountID, points)
		if err != nil {
			return err
		}

		result = AdjustResult{NewBalance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
