package entity

import (
	"time"

	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	"github.com/google/uuid"
)

// WithdrawStatus is the review state of a payout request
type WithdrawStatus string

// Withdraw request states. Paid and rejected are terminal.
const (
	WithdrawPending  WithdrawStatus = "pending"
	WithdrawPaid     WithdrawStatus = "paid"
	WithdrawRejected WithdrawStatus = "rejected"
)

// ParseWithdrawStatus validates a terminal status supplied by the admin API
func ParseWithdrawStatus(s string) (WithdrawStatus, error) {
	switch WithdrawStatus(s) {
	case WithdrawPaid:
		return WithdrawPaid, nil
	case WithdrawRejected:
		return WithdrawRejected, nil
	default:
		return "", errs.ErrInvalidStatus
	}
}

// WithdrawRequest is a pending payout instruction awaiting admin review. The
// amount was already debited from the owner's balance when the request was
// created; a rejection refunds it.
type WithdrawRequest struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	AmountCents int64
	Status      WithdrawStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewWithdrawRequest creates a pending request for the given debited amount
func NewWithdrawRequest(userID uuid.UUID, amountCents int64, timeProvider coreport.TimeProvider) (*WithdrawRequest, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrInvalidUserID
	}
	if amountCents <= 0 {
		return nil, errs.ErrNegativeAmount
	}

	now := timeProvider.Now()
	return &WithdrawRequest{
		ID:          uuid.New(),
		UserID:      userID,
		AmountCents: amountCents,
		Status:      WithdrawPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Amount returns the amount as a two-decimal string
func (r *WithdrawRequest) Amount() string {
	return FormatCents(r.AmountCents)
}

// Transition moves a pending request to a terminal state. Terminal states are
// final: any further transition is rejected.
func (r *WithdrawRequest) Transition(to WithdrawStatus, timeProvider coreport.TimeProvider) error {
	if to != WithdrawPaid && to != WithdrawRejected {
		return errs.ErrInvalidStatus
	}
	if r.Status != WithdrawPending {
		return errs.ErrRequestNotPending
	}
	r.Status = to
	r.UpdatedAt = timeProvider.Now()
	return nil
}
