package persistence

import (
	"context"
	"time"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	"github.com/google/uuid"
)

// UserRepository defines the operations workflows need on user records
type UserRepository interface {
	// GetByID retrieves a user by id
	//
	// Possible errors:
	// - ErrUserNotFound: if no user has the id
	// - ErrUserLookupFailed: if the datastore call fails
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create inserts a new user record
	//
	// Possible errors:
	// - ErrDuplicateUser: if the id or email is already taken
	// - ErrDatabaseConnection: if the datastore call fails
	Create(ctx context.Context, user *entity.User) error

	// Update persists balance, earn rate, last_claim and payout details
	//
	// Possible errors:
	// - ErrUserNotFound: if the user no longer exists
	// - ErrDatabaseConnection: if the datastore call fails
	Update(ctx context.Context, user *entity.User) error

	// ApplyClaim atomically credits one claim (balance += earn_rate,
	// last_claim = now) conditioned on last_claim still being the value the
	// caller observed. If another session claimed in between, no row matches
	// and ErrCooldownActive is returned, preventing double credits.
	ApplyClaim(ctx context.Context, userID uuid.UUID, expectedLastClaim *time.Time, now time.Time) (*entity.User, error)

	// UpdateEarnRate persists a new earn rate for the user
	UpdateEarnRate(ctx context.Context, userID uuid.UUID, earnRateCents int64) error

	// CreditBalance atomically adds cents to the user's balance, used when a
	// rejected withdrawal is refunded
	CreditBalance(ctx context.Context, userID uuid.UUID, cents int64) error

	// TopByBalance returns the top limit users ordered by balance descending
	TopByBalance(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}
