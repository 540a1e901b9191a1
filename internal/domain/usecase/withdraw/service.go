package withdraw

import (
	"context"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	"github.com/Akachukwuu/earnquiza/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// MinWithdrawalCents is the smallest cash-out a user may request: 100.00 PTs
const MinWithdrawalCents = int64(10000)

// Result is the outcome of a successful withdrawal request
type Result struct {
	RequestID  uuid.UUID
	Amount     string
	NewBalance string
}

// Service handles user withdrawal requests and the admin review that settles
// them. The debit happens at request time; a rejection refunds it.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a withdrawal service
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Request validates the amount, debits the balance, stores the payout
// destination on the user and inserts a pending request, all in one unit of
// work. Validation failures happen before any write.
func (s *Service) Request(ctx context.Context, userID uuid.UUID, amount string, payout entity.PayoutDetails) (*Result, error) {
	amountCents, err := entity.ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	if amountCents < MinWithdrawalCents {
		return nil, errs.ErrBelowMinimumWithdrawal
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	userRepo := s.uow.GetUserRepository(txCtx)
	user, err := userRepo.GetByID(txCtx, userID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := user.Debit(amountCents, s.timeProvider); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}
	user.SetPayoutDetails(payout, s.timeProvider)

	if err := userRepo.Update(txCtx, user); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	request, err := entity.NewWithdrawRequest(userID, amountCents, s.timeProvider)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := s.uow.GetWithdrawRequestRepository(txCtx).Create(txCtx, request); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Withdrawal requested", map[string]any{
		"user_id":     userID.String(),
		"request_id":  request.ID.String(),
		"amount":      request.Amount(),
		"new_balance": user.Balance(),
	})

	return &Result{
		RequestID:  request.ID,
		Amount:     request.Amount(),
		NewBalance: user.Balance(),
	}, nil
}

// List returns every withdrawal request joined with the owner's payout
// details, newest first, for the admin review table.
func (s *Service) List(ctx context.Context) ([]persistence.WithdrawListing, error) {
	return s.uow.GetWithdrawRequestRepository(ctx).ListNewestFirst(ctx)
}

// Review transitions a pending request to paid or rejected. A rejection
// credits the debited amount back to the owner in the same unit of work as
// the status flip, so funds can never be stranded by a rejected request.
func (s *Service) Review(ctx context.Context, requestID uuid.UUID, to entity.WithdrawStatus) (*entity.WithdrawRequest, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	requestRepo := s.uow.GetWithdrawRequestRepository(txCtx)
	request, err := requestRepo.GetByID(txCtx, requestID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := request.Transition(to, s.timeProvider); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := requestRepo.Update(txCtx, request); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if to == entity.WithdrawRejected {
		if err := s.uow.GetUserRepository(txCtx).CreditBalance(txCtx, request.UserID, request.AmountCents); err != nil {
			_ = s.uow.Rollback(txCtx)
			return nil, err
		}
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Withdrawal reviewed", map[string]any{
		"request_id": request.ID.String(),
		"user_id":    request.UserID.String(),
		"status":     string(request.Status),
		"amount":     request.Amount(),
		"refunded":   to == entity.WithdrawRejected,
	})

	return request, nil
}
