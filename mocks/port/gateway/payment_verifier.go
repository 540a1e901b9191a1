package gateway

import (
	"context"

	"github.com/Akachukwuu/earnquiza/internal/domain/port/gateway"
	"github.com/stretchr/testify/mock"
)

// MockPaymentVerifier is a testify mock for the PaymentVerifier port
type MockPaymentVerifier struct {
	mock.Mock
}

func (m *MockPaymentVerifier) VerifyTransaction(ctx context.Context, transactionID string) (*gateway.VerifyResult, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.VerifyResult), args.Error(1)
}
