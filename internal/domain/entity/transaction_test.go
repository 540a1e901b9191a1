package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(fixedTime)
	userID := uuid.New()

	t.Run("should create a success record", func(t *testing.T) {
		txn, err := entity.NewTransaction("ctoe_111", "12345", userID, 100000, "NGN", entity.TxStatusSuccess, "{}", tp)

		assert.NoError(t, err)
		assert.Equal(t, "ctoe_111", txn.TxRef)
		assert.Equal(t, "12345", txn.FlutterwaveTxID)
		assert.Equal(t, "1000.00", txn.Amount())
		assert.True(t, txn.Succeeded())
		assert.Equal(t, fixedTime, txn.CreatedAt)
	})

	t.Run("should default the currency", func(t *testing.T) {
		txn, err := entity.NewTransaction("ctoe_111", "12345", userID, 100000, "", entity.TxStatusFailed, "{}", tp)

		assert.NoError(t, err)
		assert.Equal(t, entity.DefaultCurrency, txn.Currency)
		assert.False(t, txn.Succeeded())
	})

	t.Run("should reject an empty tx_ref", func(t *testing.T) {
		_, err := entity.NewTransaction("", "12345", userID, 100000, "NGN", entity.TxStatusSuccess, "{}", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidTxRef)
	})

	t.Run("should reject a nil user id", func(t *testing.T) {
		_, err := entity.NewTransaction("ctoe_111", "12345", uuid.Nil, 100000, "NGN", entity.TxStatusSuccess, "{}", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
