package deposit

import (
	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	"github.com/Akachukwuu/earnquiza/internal/domain/port/gateway"
	"github.com/Akachukwuu/earnquiza/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// EarnRateMultiplier is the factor applied to a user's earn rate for each
// verified deposit. The server is the only place this constant exists; clients
// may preview it but never assert it.
const EarnRateMultiplier = 1.35

// Email-check outcomes reported back to the caller
const (
	EmailCheckPassed  = "passed"
	EmailCheckSkipped = "skipped (test mode)"
)

// VerifyRequest is the input to the deposit verification workflow. TxRef is
// the untrusted client-generated idempotency reference; TransactionID is the
// gateway identifier that is actually traceable to money having moved.
type VerifyRequest struct {
	TxRef         string
	TransactionID string
	UserID        uuid.UUID
}

// VerifyResponse is the workflow outcome. StatusCode carries the HTTP status
// the handler should answer with.
type VerifyResponse struct {
	Verified    bool
	Reason      string
	NewEarnRate string
	EmailCheck  string
	Warning     string
	UpdateError string
	ErrorID     string
	Detail      string
	StatusCode  int
}

// Service runs the deposit verification workflow: gateway verification,
// invariant checks, idempotent audit upsert and the earn-rate boost.
type Service struct {
	verifier        gateway.PaymentVerifier
	userRepo        persistence.UserRepository
	transactionRepo persistence.TransactionRepository
	uow             persistence.UnitOfWork
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger

	// testMode skips the customer-email identity binding. It is set only from
	// injected configuration, never inferred from request data.
	testMode bool
}

// NewService creates a deposit verification service
func NewService(
	verifier gateway.PaymentVerifier,
	userRepo persistence.UserRepository,
	transactionRepo persistence.TransactionRepository,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	testMode bool,
) *Service {
	return &Service{
		verifier:        verifier,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		uow:             uow,
		timeProvider:    timeProvider,
		logger:          logger,
		testMode:        testMode,
	}
}
