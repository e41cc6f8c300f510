package refcode

import (
	"crypto/rand"
)

// Alphabet excludes 0/O and 1/I to keep codes readable over the phone.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const Length = 8

// New returns a fresh referral code. Uniqueness is enforced by the
// accounts table; callers retry on a duplicate-key error.
func New() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}
