package entity

import (
	"time"

	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	"github.com/google/uuid"
)

// TransactionStatus is the audit outcome of one payment verification attempt
type TransactionStatus string

// Transaction statuses. There is no pending state: a row is only written once
// the gateway has answered.
const (
	TxStatusSuccess TransactionStatus = "success"
	TxStatusFailed  TransactionStatus = "failed"
)

// DefaultCurrency is the currency assumed when the gateway omits one
const DefaultCurrency = "NGN"

// Transaction records one external payment attempt, keyed by the
// client-generated tx_ref. Re-verification of the same reference overwrites
// the prior row rather than duplicating it; rows are never deleted.
type Transaction struct {
	ID              uint64
	TxRef           string
	FlutterwaveTxID string
	UserID          uuid.UUID
	AmountCents     int64
	Currency        string
	Status          TransactionStatus
	// Metadata holds the raw gateway verification payload for audit
	Metadata  string
	CreatedAt time.Time
}

// NewTransaction creates a transaction audit record for a verification attempt
func NewTransaction(
	txRef string,
	flutterwaveTxID string,
	userID uuid.UUID,
	amountCents int64,
	currency string,
	status TransactionStatus,
	metadata string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if txRef == "" {
		return nil, errs.ErrInvalidTxRef
	}
	if userID == uuid.Nil {
		return nil, errs.ErrInvalidUserID
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Transaction{
		TxRef:           txRef,
		FlutterwaveTxID: flutterwaveTxID,
		UserID:          userID,
		AmountCents:     amountCents,
		Currency:        currency,
		Status:          status,
		Metadata:        metadata,
		CreatedAt:       timeProvider.Now(),
	}, nil
}

// Succeeded reports whether the verification attempt succeeded
func (t *Transaction) Succeeded() bool {
	return t.Status == TxStatusSuccess
}

// Amount returns the amount as a two-decimal string
func (t *Transaction) Amount() string {
	return FormatCents(t.AmountCents)
}
