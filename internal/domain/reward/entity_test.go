//go:build unit

package reward_test

import (
	"testing"

	"stablebook/internal/domain/reward"
	"stablebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RewardBuilder)
	errIs  error
}

func TestReward(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRewardBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reward.TypeDiscount, actual.RewardType())
		assert.Equal(t, int64(500), actual.PointCost())
		assert.Nil(t, actual.Stock())
		assert.True(t, actual.Active())
	})

	t.Run("point cost validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum valid cost",
				mutate: func(b *builder.RewardBuilder) { b.WithPointCost(1) },
			},
			{
				name:   "zero cost",
				mutate: func(b *builder.RewardBuilder) { b.WithPointCost(0) },
				errIs:  reward.ErrInvalidPointCost,
			},
			{
				name:   "negative cost",
				mutate: func(b *builder.RewardBuilder) { b.WithPointCost(-100) },
				errIs:  reward.ErrInvalidPointCost,
			},
		})
	})

	t.Run("discount rewards", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum valid percent",
				mutate: func(b *builder.RewardBuilder) { b.WithDiscountPercent(1) },
			},
			{
				name:   "full discount",
				mutate: func(b *builder.RewardBuilder) { b.WithDiscountPercent(100) },
			},
			{
				name:   "zero percent",
				mutate: func(b *builder.RewardBuilder) { b.WithDiscountPercent(0) },
				errIs:  reward.ErrInvalidDiscountPercent,
			},
			{
				name:   "above full discount",
				mutate: func(b *builder.RewardBuilder) { b.WithDiscountPercent(101) },
				errIs:  reward.ErrInvalidDiscountPercent,
			},
			{
				name:   "missing percent",
				mutate: func(b *builder.RewardBuilder) { b.DiscountPercent = nil },
				errIs:  reward.ErrMissingDiscountPercent,
			},
			{
				name: "free service on a discount reward",
				mutate: func(b *builder.RewardBuilder) {
					svc := "LESSON"
					b.FreeService = &svc
				},
				errIs: reward.ErrFieldsMutuallyExclusive,
			},
		})
	})

	t.Run("free service rewards", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid free service",
				mutate: func(b *builder.RewardBuilder) { b.AsFreeService("LESSON") },
			},
			{
				name: "missing service",
				mutate: func(b *builder.RewardBuilder) {
					b.AsFreeService("LESSON")
					b.FreeService = nil
				},
				errIs: reward.ErrMissingFreeService,
			},
			{
				name: "discount percent on a free service reward",
				mutate: func(b *builder.RewardBuilder) {
					b.AsFreeService("LESSON")
					percent := int32(10)
					b.DiscountPercent = &percent
				},
				errIs: reward.ErrFieldsMutuallyExclusive,
			},
		})
	})

	t.Run("stock validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero stock allowed",
				mutate: func(b *builder.RewardBuilder) { b.WithStock(0) },
			},
			{
				name:   "negative stock",
				mutate: func(b *builder.RewardBuilder) { b.WithStock(-1) },
				errIs:  reward.ErrInvalidStock,
			},
		})
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := reward.NewType("CASHBACK")
		require.ErrorIs(t, err, reward.ErrInvalidType)
	})
}

func TestInStock(t *testing.T) {
	t.Run("nil stock means unlimited", func(t *testing.T) {
		r, err := builder.NewRewardBuilder().BuildDomain()
		require.NoError(t, err)
		assert.True(t, r.InStock())
	})

	t.Run("zero stock is exhausted", func(t *testing.T) {
		r, err := builder.NewRewardBuilder().WithStock(0).BuildDomain()
		require.NoError(t, err)
		assert.False(t, r.InStock())
	})

	t.Run("positive stock is available", func(t *testing.T) {
		r, err := builder.NewRewardBuilder().WithStock(3).BuildDomain()
		require.NoError(t, err)
		assert.True(t, r.InStock())
	})
}

func TestGrant(t *testing.T) {
	t.Run("new grant is unused", func(t *testing.T) {
		g := reward.NewGrant(uuid.New(), uuid.New())
		assert.False(t, g.Used())
		assert.Nil(t, g.UsedBookingID())
	})

	t.Run("mark used records the booking", func(t *testing.T) {
		g := reward.NewGrant(uuid.New(), uuid.New())
		bookingID := uuid.New()

		require.NoError(t, g.MarkUsed(bookingID))
		assert.True(t, g.Used())
		require.NotNil(t, g.UsedBookingID())
		assert.Equal(t, bookingID, *g.UsedBookingID())
	})

	t.Run("double use rejected", func(t *testing.T) {
		g := reward.NewGrant(uuid.New(), uuid.New())
		require.NoError(t, g.MarkUsed(uuid.New()))

		err := g.MarkUsed(uuid.New())
		require.ErrorIs(t, err, reward.ErrGrantAlreadyUsed)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRewardBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
