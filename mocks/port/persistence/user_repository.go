package persistence

import (
	"context"
	"time"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock for the UserRepository port
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ApplyClaim(ctx context.Context, userID uuid.UUID, expectedLastClaim *time.Time, now time.Time) (*entity.User, error) {
	args := m.Called(ctx, userID, expectedLastClaim, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateEarnRate(ctx context.Context, userID uuid.UUID, earnRateCents int64) error {
	args := m.Called(ctx, userID, earnRateCents)
	return args.Error(0)
}

func (m *MockUserRepository) CreditBalance(ctx context.Context, userID uuid.UUID, cents int64) error {
	args := m.Called(ctx, userID, cents)
	return args.Error(0)
}

func (m *MockUserRepository) TopByBalance(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LeaderboardEntry), args.Error(1)
}
