package entity

import (
	"strings"
	"time"

	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	"github.com/google/uuid"
)

// PayoutDetails holds the bank destination for cash withdrawals. All fields
// are optional until the user's first withdrawal request.
type PayoutDetails struct {
	AccountName   string
	AccountNumber string
	BankName      string
}

// User is an earner account: a point balance that grows by claims, an earn
// rate that grows by verified deposits, and a claim cooldown.
type User struct {
	ID            uuid.UUID
	Email         string
	balanceCents  int64
	earnRateCents int64
	LastClaim     *time.Time
	ClaimCooldown int // cooldown units, one unit = CooldownUnit
	Payout        PayoutDetails
	IsAdmin       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates a user with an initial balance and earn rate given as
// decimal strings.
func NewUser(id uuid.UUID, email, balance, earnRate string, cooldown int, timeProvider coreport.TimeProvider) (*User, error) {
	if id == uuid.Nil {
		return nil, errs.ErrInvalidUserID
	}

	balanceCents, err := ParseAmount(balance)
	if err != nil {
		return nil, err
	}
	earnRateCents, err := ParseAmount(earnRate)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		ID:            id,
		Email:         strings.ToLower(strings.TrimSpace(email)),
		balanceCents:  balanceCents,
		earnRateCents: earnRateCents,
		ClaimCooldown: cooldown,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// BalanceCents returns the balance in cents
func (u *User) BalanceCents() int64 {
	return u.balanceCents
}

// Balance returns the balance as a two-decimal string
func (u *User) Balance() string {
	return FormatCents(u.balanceCents)
}

// EarnRateCents returns the earn rate in cents
func (u *User) EarnRateCents() int64 {
	return u.earnRateCents
}

// EarnRate returns the earn rate as a two-decimal string
func (u *User) EarnRate() string {
	return FormatCents(u.earnRateCents)
}

// SetBalanceCents sets the balance directly, for repositories rebuilding the
// entity from storage.
func (u *User) SetBalanceCents(cents int64) {
	u.balanceCents = cents
}

// SetEarnRateCents sets the earn rate directly, for repositories.
func (u *User) SetEarnRateCents(cents int64) {
	u.earnRateCents = cents
}

// ApplyClaim credits one claim's worth of points and stamps last_claim.
func (u *User) ApplyClaim(timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	u.balanceCents += u.earnRateCents
	u.LastClaim = &now
	u.UpdatedAt = now
}

// Debit removes cents from the balance for a withdrawal. The balance never
// goes negative.
func (u *User) Debit(cents int64, timeProvider coreport.TimeProvider) error {
	if cents > u.balanceCents {
		return errs.NewInsufficientBalanceError(u.ID.String(), FormatCents(cents), u.Balance())
	}
	u.balanceCents -= cents
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Credit adds cents back to the balance, used when a rejected withdrawal is
// refunded.
func (u *User) Credit(cents int64, timeProvider coreport.TimeProvider) {
	u.balanceCents += cents
	u.UpdatedAt = timeProvider.Now()
}

// BoostEarnRate multiplies the earn rate by factor, rounded to a cent, and
// returns the new rate in cents.
func (u *User) BoostEarnRate(factor float64, timeProvider coreport.TimeProvider) int64 {
	u.earnRateCents = MultiplyCents(u.earnRateCents, factor)
	u.UpdatedAt = timeProvider.Now()
	return u.earnRateCents
}

// SetPayoutDetails records the bank destination used by withdrawals.
func (u *User) SetPayoutDetails(details PayoutDetails, timeProvider coreport.TimeProvider) {
	u.Payout = details
	u.UpdatedAt = timeProvider.Now()
}
