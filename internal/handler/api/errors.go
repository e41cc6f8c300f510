package api

import (
	"errors"

	"stablebook/internal/domain/account"
	"stablebook/internal/domain/booking"
	"stablebook/internal/domain/calendar"
	"stablebook/internal/domain/horse"
	"stablebook/internal/domain/loyalty"
	"stablebook/internal/domain/reward"
	"stablebook/internal/pkg/password"
)

// Domain validation failures map to 400; anything not listed here is the
// caller's fault in some other way or a server error.
var validationErrors = []error{
	account.ErrInvalidEmail,
	account.ErrInvalidReferralCode,
	account.ErrInvalidRole,
	password.ErrInvalidPassword,
	booking.ErrInvalidSlotTime,
	booking.ErrInvalidContact,
	booking.ErrInvalidGroupSize,
	booking.ErrInvalidStatus,
	booking.ErrInvalidService,
	booking.ErrInvalidExperience,
	booking.ErrPastDate,
	booking.ErrDuplicateHorse,
	booking.ErrTooManyHorses,
	calendar.ErrBlockReasonRequired,
	calendar.ErrDuplicateSlot,
	calendar.ErrInvalidCapacity,
	loyalty.ErrZeroAmount,
	loyalty.ErrInvalidKind,
	reward.ErrInvalidType,
	reward.ErrInvalidPointCost,
	reward.ErrInvalidDiscountPercent,
	reward.ErrMissingDiscountPercent,
	reward.ErrMissingFreeService,
	reward.ErrFieldsMutuallyExclusive,
	reward.ErrInvalidStock,
	horse.ErrInvalidName,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
