package persistence

import (
	"context"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	"github.com/Akachukwuu/earnquiza/internal/domain/port/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockWithdrawRequestRepository is a testify mock for the WithdrawRequestRepository port
type MockWithdrawRequestRepository struct {
	mock.Mock
}

func (m *MockWithdrawRequestRepository) Create(ctx context.Context, request *entity.WithdrawRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockWithdrawRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WithdrawRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WithdrawRequest), args.Error(1)
}

func (m *MockWithdrawRequestRepository) Update(ctx context.Context, request *entity.WithdrawRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockWithdrawRequestRepository) ListNewestFirst(ctx context.Context) ([]persistence.WithdrawListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]persistence.WithdrawListing), args.Error(1)
}
