package cache

import (
	"context"
	"time"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockLeaderboardCache is a testify mock for the LeaderboardCache port
type MockLeaderboardCache struct {
	mock.Mock
}

func (m *MockLeaderboardCache) Get(ctx context.Context, limit int) ([]entity.LeaderboardEntry, bool, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]entity.LeaderboardEntry), args.Bool(1), args.Error(2)
}

func (m *MockLeaderboardCache) Set(ctx context.Context, limit int, entries []entity.LeaderboardEntry, ttl time.Duration) error {
	args := m.Called(ctx, limit, entries, ttl)
	return args.Error(0)
}
