package persistence

import "context"

// UnitOfWork coordinates multi-repository writes inside one database
// transaction so a workflow's steps commit or roll back together.
type UnitOfWork interface {
	// Begin starts a transaction and returns a context carrying it
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns a transaction repository bound to the transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetWithdrawRequestRepository returns a withdraw request repository bound to the transaction
	GetWithdrawRequestRepository(ctx context.Context) WithdrawRequestRepository
}
