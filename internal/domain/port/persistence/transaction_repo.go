package persistence

import (
	"context"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
)

// TransactionRepository stores payment verification audit rows keyed by tx_ref
type TransactionRepository interface {
	// GetByTxRef retrieves the record for a client reference
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no row has the reference
	// - ErrDatabaseConnection: if the datastore call fails
	GetByTxRef(ctx context.Context, txRef string) (*entity.Transaction, error)

	// Upsert inserts the record, or overwrites the existing row with the same
	// tx_ref. Re-verification of a reference replaces prior status instead of
	// duplicating; rows are never deleted.
	Upsert(ctx context.Context, transaction *entity.Transaction) error
}
