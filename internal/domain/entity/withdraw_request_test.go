package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
)

func TestParseWithdrawStatus(t *testing.T) {
	t.Run("should accept terminal statuses", func(t *testing.T) {
		status, err := entity.ParseWithdrawStatus("paid")
		assert.NoError(t, err)
		assert.Equal(t, entity.WithdrawPaid, status)

		status, err = entity.ParseWithdrawStatus("rejected")
		assert.NoError(t, err)
		assert.Equal(t, entity.WithdrawRejected, status)
	})

	t.Run("should reject pending and unknown statuses", func(t *testing.T) {
		_, err := entity.ParseWithdrawStatus("pending")
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)

		_, err = entity.ParseWithdrawStatus("approved")
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	})
}

func TestNewWithdrawRequest(t *testing.T) {
	fixedTime := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(fixedTime)

	t.Run("should create a pending request", func(t *testing.T) {
		userID := uuid.New()

		request, err := entity.NewWithdrawRequest(userID, 10000, tp)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, request.ID)
		assert.Equal(t, userID, request.UserID)
		assert.Equal(t, entity.WithdrawPending, request.Status)
		assert.Equal(t, "100.00", request.Amount())
		assert.Equal(t, fixedTime, request.CreatedAt)
	})

	t.Run("should reject a nil user id", func(t *testing.T) {
		_, err := entity.NewWithdrawRequest(uuid.Nil, 10000, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("should reject a non-positive amount", func(t *testing.T) {
		_, err := entity.NewWithdrawRequest(uuid.New(), 0, tp)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestWithdrawRequest_Transition(t *testing.T) {
	fixedTime := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(fixedTime)

	t.Run("should move pending to paid", func(t *testing.T) {
		request, _ := entity.NewWithdrawRequest(uuid.New(), 10000, tp)

		err := request.Transition(entity.WithdrawPaid, tp)

		assert.NoError(t, err)
		assert.Equal(t, entity.WithdrawPaid, request.Status)
	})

	t.Run("should move pending to rejected", func(t *testing.T) {
		request, _ := entity.NewWithdrawRequest(uuid.New(), 10000, tp)

		err := request.Transition(entity.WithdrawRejected, tp)

		assert.NoError(t, err)
		assert.Equal(t, entity.WithdrawRejected, request.Status)
	})

	t.Run("should reject transitioning to pending", func(t *testing.T) {
		request, _ := entity.NewWithdrawRequest(uuid.New(), 10000, tp)

		err := request.Transition(entity.WithdrawPending, tp)

		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
		assert.Equal(t, entity.WithdrawPending, request.Status)
	})

	t.Run("should reject transitions out of a terminal state", func(t *testing.T) {
		request, _ := entity.NewWithdrawRequest(uuid.New(), 10000, tp)
		assert.NoError(t, request.Transition(entity.WithdrawPaid, tp))

		err := request.Transition(entity.WithdrawRejected, tp)

		assert.ErrorIs(t, err, errs.ErrRequestNotPending)
		assert.Equal(t, entity.WithdrawPaid, request.Status)
	})
}
