package claim

import (
	"context"
	"time"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	"github.com/Akachukwuu/earnquiza/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// Result is the outcome of a successful claim
type Result struct {
	ClaimedAmount string
	NewBalance    string
	LastClaim     time.Time
	NextClaim     time.Time
}

// Service credits earn_rate to balance once per cooldown period
type Service struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a claim service
func NewService(userRepo persistence.UserRepository, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Status evaluates the claim timer for a user at the current instant
func (s *Service) Status(ctx context.Context, userID uuid.UUID) (entity.ClaimStatus, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entity.ClaimStatus{}, err
	}
	return entity.ComputeClaimStatus(user.LastClaim, user.ClaimCooldown, s.timeProvider.Now()), nil
}

// Claim credits one claim if the cooldown has elapsed. The credit is applied
// as an atomic conditional update keyed on the last_claim value observed
// here, so two sessions racing for the same claim cannot double-credit: the
// loser's update matches no row and fails with ErrCooldownActive.
func (s *Service) Claim(ctx context.Context, userID uuid.UUID) (*Result, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	status := entity.ComputeClaimStatus(user.LastClaim, user.ClaimCooldown, now)
	if !status.Ready {
		return nil, errs.ErrCooldownActive
	}

	updated, err := s.userRepo.ApplyClaim(ctx, userID, user.LastClaim, now)
	if err != nil {
		if errs.IsCooldownError(err) {
			s.logger.Warn("Concurrent claim lost the conditional update", map[string]any{
				"user_id": userID.String(),
			})
		}
		return nil, err
	}

	s.logger.Info("Claim credited", map[string]any{
		"user_id":     userID.String(),
		"amount":      updated.EarnRate(),
		"new_balance": updated.Balance(),
	})

	next := entity.ComputeClaimStatus(updated.LastClaim, updated.ClaimCooldown, now)
	return &Result{
		ClaimedAmount: updated.EarnRate(),
		NewBalance:    updated.Balance(),
		LastClaim:     now,
		NextClaim:     next.NextClaim,
	}, nil
}
