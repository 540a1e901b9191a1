package withdraw

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
	persistenceport "github.com/Akachukwuu/earnquiza/internal/domain/port/persistence"
	"github.com/Akachukwuu/earnquiza/mocks/port/core"
	"github.com/Akachukwuu/earnquiza/mocks/port/persistence"
)

func relaxedLogger() *core.MockLogger {
	l := new(core.MockLogger)
	l.On("Debug", mock.Anything, mock.Anything).Maybe()
	l.On("Info", mock.Anything, mock.Anything).Maybe()
	l.On("Warn", mock.Anything, mock.Anything).Maybe()
	l.On("Error", mock.Anything, mock.Anything).Maybe()
	return l
}

type withdrawFixture struct {
	uow          *persistence.MockUnitOfWork
	userRepo     *persistence.MockUserRepository
	withdrawRepo *persistence.MockWithdrawRequestRepository
	tp           *core.MockTimeProvider
	service      *Service
}

func newWithdrawFixture() *withdrawFixture {
	fixedTime := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	f := &withdrawFixture{
		uow:          new(persistence.MockUnitOfWork),
		userRepo:     new(persistence.MockUserRepository),
		withdrawRepo: new(persistence.MockWithdrawRequestRepository),
		tp:           new(core.MockTimeProvider),
	}
	f.tp.On("Now").Return(fixedTime)
	f.service = NewService(f.uow, f.tp, relaxedLogger())
	return f
}

func TestService_Request(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	payout := entity.PayoutDetails{
		AccountName:   "Jane Doe",
		AccountNumber: "0123456789",
		BankName:      "First Bank",
	}

	t.Run("should debit the balance and create a pending request", func(t *testing.T) {
		// Arrange
		f := newWithdrawFixture()

		user, err := entity.NewUser(userID, "jane@example.com", "500.00", "10.00", 6, f.tp)
		assert.NoError(t, err)

		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("GetUserRepository", ctx).Return(f.userRepo)
		f.uow.On("GetWithdrawRequestRepository", ctx).Return(f.withdrawRepo)
		f.userRepo.On("GetByID", ctx, userID).Return(user, nil)
		f.userRepo.On("Update", ctx, user).Return(nil)
		f.withdrawRepo.On("Create", ctx, mock.AnythingOfType("*entity.WithdrawRequest")).Return(nil)
		f.uow.On("Commit", ctx).Return(nil)

		// Act
		result, err := f.service.Request(ctx, userID, "100.00", payout)

		// Assert
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.RequestID)
		assert.Equal(t, "100.00", result.Amount)
		assert.Equal(t, "400.00", result.NewBalance)
		assert.Equal(t, payout, user.Payout)

		f.uow.AssertExpectations(t)
		f.userRepo.AssertExpectations(t)
		f.withdrawRepo.AssertExpectations(t)
	})

	t.Run("should reject an amount below the minimum before any write", func(t *testing.T) {
		f := newWithdrawFixture()

		result, err := f.service.Request(ctx, userID, "50.00", payout)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrBelowMinimumWithdrawal)
		f.uow.AssertNotCalled(t, "Begin")
	})

	t.Run("should accept exactly the minimum amount", func(t *testing.T) {
		f := newWithdrawFixture()

		user, err := entity.NewUser(userID, "jane@example.com", "100.00", "10.00", 6, f.tp)
		assert.NoError(t, err)

		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("GetUserRepository", ctx).Return(f.userRepo)
		f.uow.On("GetWithdrawRequestRepository", ctx).Return(f.withdrawRepo)
		f.userRepo.On("GetByID", ctx, userID).Return(user, nil)
		f.userRepo.On("Update", ctx, user).Return(nil)
		f.withdrawRepo.On("Create", ctx, mock.AnythingOfType("*entity.WithdrawRequest")).Return(nil)
		f.uow.On("Commit", ctx).Return(nil)

		result, err := f.service.Request(ctx, userID, "100", payout)

		assert.NoError(t, err)
		assert.Equal(t, "0.00", result.NewBalance)
	})

	t.Run("should reject an invalid amount string", func(t *testing.T) {
		f := newWithdrawFixture()

		result, err := f.service.Request(ctx, userID, "abc", payout)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		f.uow.AssertNotCalled(t, "Begin")
	})

	t.Run("should roll back when the balance cannot cover the amount", func(t *testing.T) {
		// Arrange
		f := newWithdrawFixture()

		user, err := entity.NewUser(userID, "jane@example.com", "99.99", "10.00", 6, f.tp)
		assert.NoError(t, err)

		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("GetUserRepository", ctx).Return(f.userRepo)
		f.userRepo.On("GetByID", ctx, userID).Return(user, nil)
		f.uow.On("Rollback", ctx).Return(nil)

		// Act
		result, err := f.service.Request(ctx, userID, "100.00", payout)

		// Assert
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		f.uow.AssertCalled(t, "Rollback", ctx)
		f.userRepo.AssertNotCalled(t, "Update")
		f.withdrawRepo.AssertNotCalled(t, "Create")
	})
}

func TestService_Review(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	newPendingRequest := func(f *withdrawFixture) *entity.WithdrawRequest {
		request, err := entity.NewWithdrawRequest(userID, 10000, f.tp)
		assert.NoError(t, err)
		return request
	}

	t.Run("should mark a pending request paid without a refund", func(t *testing.T) {
		// Arrange
		f := newWithdrawFixture()
		request := newPendingRequest(f)

		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("GetWithdrawRequestRepository", ctx).Return(f.withdrawRepo)
		f.withdrawRepo.On("GetByID", ctx, request.ID).Return(request, nil)
		f.withdrawRepo.On("Update", ctx, request).Return(nil)
		f.uow.On("Commit", ctx).Return(nil)

		// Act
		reviewed, err := f.service.Review(ctx, request.ID, entity.WithdrawPaid)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, entity.WithdrawPaid, reviewed.Status)
		f.userRepo.AssertNotCalled(t, "CreditBalance")
	})

	t.Run("should refund the owner when a request is rejected", func(t *testing.T) {
		// Arrange
		f := newWithdrawFixture()
		request := newPendingRequest(f)

		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("GetWithdrawRequestRepository", ctx).Return(f.withdrawRepo)
		f.uow.On("GetUserRepository", ctx).Return(f.userRepo)
		f.withdrawRepo.On("GetByID", ctx, request.ID).Return(request, nil)
		f.withdrawRepo.On("Update", ctx, request).Return(nil)
		f.userRepo.On("CreditBalance", ctx, userID, int64(10000)).Return(nil)
		f.uow.On("Commit", ctx).Return(nil)

		// Act
		reviewed, err := f.service.Review(ctx, request.ID, entity.WithdrawRejected)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, entity.WithdrawRejected, reviewed.Status)
		f.userRepo.AssertExpectations(t)
	})

	t.Run("should reject reviewing a settled request", func(t *testing.T) {
		f := newWithdrawFixture()
		request := newPendingRequest(f)
		assert.NoError(t, request.Transition(entity.WithdrawPaid, f.tp))

		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("GetWithdrawRequestRepository", ctx).Return(f.withdrawRepo)
		f.withdrawRepo.On("GetByID", ctx, request.ID).Return(request, nil)
		f.uow.On("Rollback", ctx).Return(nil)

		reviewed, err := f.service.Review(ctx, request.ID, entity.WithdrawRejected)

		assert.Nil(t, reviewed)
		assert.ErrorIs(t, err, errs.ErrRequestNotPending)
		f.withdrawRepo.AssertNotCalled(t, "Update")
	})

	t.Run("should roll back when the refund write fails", func(t *testing.T) {
		f := newWithdrawFixture()
		request := newPendingRequest(f)

		f.uow.On("Begin", ctx).Return(ctx, nil)
		f.uow.On("GetWithdrawRequestRepository", ctx).Return(f.withdrawRepo)
		f.uow.On("GetUserRepository", ctx).Return(f.userRepo)
		f.withdrawRepo.On("GetByID", ctx, request.ID).Return(request, nil)
		f.withdrawRepo.On("Update", ctx, request).Return(nil)
		f.userRepo.On("CreditBalance", ctx, userID, int64(10000)).
			Return(errors.New("connection reset"))
		f.uow.On("Rollback", ctx).Return(nil)

		reviewed, err := f.service.Review(ctx, request.ID, entity.WithdrawRejected)

		assert.Nil(t, reviewed)
		assert.Error(t, err)
		f.uow.AssertCalled(t, "Rollback", ctx)
		f.uow.AssertNotCalled(t, "Commit")
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("should return listings newest first", func(t *testing.T) {
		f := newWithdrawFixture()

		older, err := entity.NewWithdrawRequest(uuid.New(), 10000, f.tp)
		assert.NoError(t, err)
		newer, err := entity.NewWithdrawRequest(uuid.New(), 20000, f.tp)
		assert.NoError(t, err)

		listings := []persistenceport.WithdrawListing{
			{Request: *newer, OwnerEmail: "newer@example.com"},
			{Request: *older, OwnerEmail: "older@example.com"},
		}

		f.uow.On("GetWithdrawRequestRepository", ctx).Return(f.withdrawRepo)
		f.withdrawRepo.On("ListNewestFirst", ctx).Return(listings, nil)

		result, err := f.service.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "newer@example.com", result[0].OwnerEmail)
	})
}
