package persistence

import (
	"context"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	"github.com/google/uuid"
)

// WithdrawListing is one admin review row: the request joined with the
// owner's contact and payout details.
type WithdrawListing struct {
	Request    entity.WithdrawRequest
	OwnerEmail string
	Payout     entity.PayoutDetails
}

// WithdrawRequestRepository stores payout requests
type WithdrawRequestRepository interface {
	// Create inserts a new pending request
	Create(ctx context.Context, request *entity.WithdrawRequest) error

	// GetByID retrieves a request by id
	//
	// Possible errors:
	// - ErrWithdrawRequestNotFound: if no request has the id
	// - ErrDatabaseConnection: if the datastore call fails
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WithdrawRequest, error)

	// Update persists a status transition
	Update(ctx context.Context, request *entity.WithdrawRequest) error

	// ListNewestFirst returns all requests joined with owner payout details,
	// ordered by creation time descending
	ListNewestFirst(ctx context.Context) ([]WithdrawListing, error)
}
