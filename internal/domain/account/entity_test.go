//go:build unit

package account_test

import (
	"testing"

	"stablebook/internal/domain/account"
	"stablebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAccountBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "rider@example.com", actual.Email().Value())
		assert.Equal(t, account.RoleUser, actual.Role())
		assert.Equal(t, int64(0), actual.Points())
		assert.Nil(t, actual.ReferredBy())
	})

	t.Run("email validation", func(t *testing.T) {
		cases := []struct {
			name  string
			email string
			valid bool
		}{
			{"standard address", "a@b.co", true},
			{"subdomain", "rider@mail.example.com", true},
			{"missing at sign", "riderexample.com", false},
			{"missing domain dot", "rider@example", false},
			{"contains whitespace", "rider @example.com", false},
			{"empty", "", false},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := account.NewEmail(tc.email)
				if tc.valid {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, account.ErrInvalidEmail)
				}
			})
		}
	})

	t.Run("referral code validation", func(t *testing.T) {
		cases := []struct {
			name  string
			code  string
			valid bool
		}{
			{"valid code", "ABCD2345", true},
			{"too short", "ABCD234", false},
			{"too long", "ABCD23456", false},
			{"lowercase rejected", "abcd2345", false},
			{"ambiguous zero rejected", "ABCD2340", false},
			{"ambiguous one rejected", "ABCD2341", false},
			{"ambiguous letter O rejected", "ABCDO345", false},
			{"ambiguous letter I rejected", "ABCDI345", false},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := account.NewReferralCode(tc.code)
				if tc.valid {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, account.ErrInvalidReferralCode)
				}
			})
		}
	})
}

func TestRole(t *testing.T) {
	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := account.NewRole("superuser")
		require.ErrorIs(t, err, account.ErrInvalidRole)
	})

	t.Run("management capability", func(t *testing.T) {
		assert.True(t, account.RoleAdmin.CanManage())
		assert.True(t, account.RoleStaff.CanManage())
		assert.False(t, account.RoleUser.CanManage())
	})
}

func TestCanAfford(t *testing.T) {
	actual, err := builder.NewAccountBuilder().BuildDomain()
	require.NoError(t, err)

	// fresh accounts start at zero
	assert.True(t, actual.CanAfford(0))
	assert.False(t, actual.CanAfford(1))
}
