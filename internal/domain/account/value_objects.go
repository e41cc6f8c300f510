package account

import (
	"regexp"
	"strings"

	"stablebook/internal/pkg/errs"
)

var (
	ErrInvalidEmail        = errs.New("invalid email address")
	ErrInvalidReferralCode = errs.New("invalid referral code")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" || !emailPattern.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

func (e Email) Value() string {
	return e.value
}

// ReferralCode is the share code printed on an account's profile. Codes are
// upper-case alphanumerics without the ambiguous 0/O and 1/I glyphs.
type ReferralCode struct {
	value string
}

var referralCodePattern = regexp.MustCompile(`^[A-HJ-NP-Z2-9]{8}$`)

func NewReferralCode(value string) (ReferralCode, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	if !referralCodePattern.MatchString(value) {
		return ReferralCode{}, ErrInvalidReferralCode
	}
	return ReferralCode{value: value}, nil
}

func (c ReferralCode) Value() string {
	return c.value
}
