package user

import (
	"context"
	"time"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
	"github.com/Akachukwuu/earnquiza/internal/domain/port/cache"
	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	"github.com/Akachukwuu/earnquiza/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// DefaultLeaderboardSize is how many rows the board shows when the caller
// does not ask for a specific size
const DefaultLeaderboardSize = 10

// LeaderboardTTL is how stale a cached board may be. It mirrors the 60 second
// refresh cadence the product's board has always had.
const LeaderboardTTL = 60 * time.Second

// Profile is a user's account view: balance, earn rate and claim timer state
type Profile struct {
	User        *entity.User
	ClaimStatus entity.ClaimStatus
}

// Service serves user profiles and the leaderboard
type Service struct {
	userRepo     persistence.UserRepository
	board        cache.LeaderboardCache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a user service. board may be nil, in which case every
// leaderboard read goes to the datastore.
func NewService(
	userRepo persistence.UserRepository,
	board cache.LeaderboardCache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		board:        board,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetProfile returns the user record with the claim timer evaluated at now
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		User:        user,
		ClaimStatus: entity.ComputeClaimStatus(user.LastClaim, user.ClaimCooldown, s.timeProvider.Now()),
	}, nil
}

// RequireAdmin loads a user and fails with ErrForbidden unless the admin
// flag is set
func (s *Service) RequireAdmin(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		return nil, errs.ErrForbidden
	}
	return user, nil
}

// Leaderboard returns the top-limit balances, served from cache when a fresh
// snapshot exists. A broken cache degrades to direct datastore reads.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}

	if s.board != nil {
		entries, ok, err := s.board.Get(ctx, limit)
		if err != nil {
			s.logger.Warn("Leaderboard cache read failed", map[string]any{
				"error": err.Error(),
			})
		} else if ok {
			return entries, nil
		}
	}

	entries, err := s.userRepo.TopByBalance(ctx, limit)
	if err != nil {
		return nil, err
	}

	if s.board != nil {
		if err := s.board.Set(ctx, limit, entries, LeaderboardTTL); err != nil {
			s.logger.Warn("Leaderboard cache write failed", map[string]any{
				"error": err.Error(),
			})
		}
	}

	return entries, nil
}
