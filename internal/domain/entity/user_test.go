package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
	"github.com/Akachukwuu/earnquiza/mocks/port/core"
)

func fixedTimeProvider(t time.Time) *core.MockTimeProvider {
	tp := new(core.MockTimeProvider)
	tp.On("Now").Return(t)
	return tp
}

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(fixedTime)

	t.Run("should create a user with parsed amounts", func(t *testing.T) {
		user, err := entity.NewUser(uuid.New(), " Jane@Example.COM ", "500.00", "10.00", 6, tp)

		assert.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, int64(50000), user.BalanceCents())
		assert.Equal(t, int64(1000), user.EarnRateCents())
		assert.Equal(t, 6, user.ClaimCooldown)
		assert.Nil(t, user.LastClaim)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("should reject a nil id", func(t *testing.T) {
		_, err := entity.NewUser(uuid.Nil, "jane@example.com", "0", "0", 6, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("should reject an invalid balance", func(t *testing.T) {
		_, err := entity.NewUser(uuid.New(), "jane@example.com", "abc", "0", 6, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestUser_Debit(t *testing.T) {
	fixedTime := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(fixedTime)

	t.Run("should debit when the balance covers the amount", func(t *testing.T) {
		user, _ := entity.NewUser(uuid.New(), "jane@example.com", "500.00", "10.00", 6, tp)

		err := user.Debit(10000, tp)

		assert.NoError(t, err)
		assert.Equal(t, "400.00", user.Balance())
	})

	t.Run("should allow debiting the full balance", func(t *testing.T) {
		user, _ := entity.NewUser(uuid.New(), "jane@example.com", "100.00", "10.00", 6, tp)

		err := user.Debit(10000, tp)

		assert.NoError(t, err)
		assert.Equal(t, "0.00", user.Balance())
	})

	t.Run("should reject a debit beyond the balance", func(t *testing.T) {
		user, _ := entity.NewUser(uuid.New(), "jane@example.com", "99.99", "10.00", 6, tp)

		err := user.Debit(10000, tp)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, "99.99", user.Balance())
	})
}

func TestUser_CreditAndClaim(t *testing.T) {
	fixedTime := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(fixedTime)

	t.Run("should credit back a refund", func(t *testing.T) {
		user, _ := entity.NewUser(uuid.New(), "jane@example.com", "400.00", "10.00", 6, tp)

		user.Credit(10000, tp)

		assert.Equal(t, "500.00", user.Balance())
	})

	t.Run("should apply a claim and stamp last_claim", func(t *testing.T) {
		user, _ := entity.NewUser(uuid.New(), "jane@example.com", "500.00", "10.00", 6, tp)

		user.ApplyClaim(tp)

		assert.Equal(t, "510.00", user.Balance())
		assert.NotNil(t, user.LastClaim)
		assert.Equal(t, fixedTime, *user.LastClaim)
	})
}

func TestUser_BoostEarnRate(t *testing.T) {
	fixedTime := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(fixedTime)

	t.Run("should multiply the earn rate and return the new value", func(t *testing.T) {
		user, _ := entity.NewUser(uuid.New(), "jane@example.com", "0", "10.00", 6, tp)

		newRate := user.BoostEarnRate(1.35, tp)

		assert.Equal(t, int64(1350), newRate)
		assert.Equal(t, "13.50", user.EarnRate())
	})

	t.Run("should round the boosted rate to the nearest cent", func(t *testing.T) {
		user, _ := entity.NewUser(uuid.New(), "jane@example.com", "0", "9.99", 6, tp)

		newRate := user.BoostEarnRate(1.35, tp)

		// 999 * 1.35 = 1348.65 cents
		assert.Equal(t, int64(1349), newRate)
	})
}
