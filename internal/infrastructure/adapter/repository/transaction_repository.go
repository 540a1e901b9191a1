package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements the transaction persistence port using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{db: db, logger: logger}
}

func (r *TransactionRepository) entityToModel(t *entity.Transaction) model.Transaction {
	return model.Transaction{
		TxRef:           t.TxRef,
		FlutterwaveTxID: t.FlutterwaveTxID,
		UserID:          t.UserID,
		AmountCents:     t.AmountCents,
		Currency:        t.Currency,
		Status:          string(t.Status),
		Metadata:        t.Metadata,
		CreatedAt:       t.CreatedAt,
	}
}

func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		TxRef:           m.TxRef,
		FlutterwaveTxID: m.FlutterwaveTxID,
		UserID:          m.UserID,
		AmountCents:     m.AmountCents,
		Currency:        m.Currency,
		Status:          entity.TransactionStatus(m.Status),
		Metadata:        m.Metadata,
		CreatedAt:       m.CreatedAt,
	}
}

// GetByTxRef retrieves the audit row for a client reference
func (r *TransactionRepository) GetByTxRef(ctx context.Context, txRef string) (*entity.Transaction, error) {
	var m model.Transaction
	result := r.db.WithContext(ctx).First(&m, "tx_ref = ?", txRef)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Database error looking up transaction", map[string]any{
			"tx_ref": txRef,
			"error":  result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(&m), nil
}

// Upsert inserts the row or, when the tx_ref already exists, overwrites the
// prior attempt's outcome. Rows are never deleted.
func (r *TransactionRepository) Upsert(ctx context.Context, transaction *entity.Transaction) error {
	m := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tx_ref"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"flutterwave_tx_id", "user_id", "amount_cents", "currency", "status", "metadata",
		}),
	}).Create(&m)

	if result.Error != nil {
		r.logger.Error("Failed to upsert transaction", map[string]any{
			"tx_ref": transaction.TxRef,
			"status": string(transaction.Status),
			"error":  result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Debug("Transaction upserted", map[string]any{
		"tx_ref": transaction.TxRef,
		"status": string(transaction.Status),
	})
	return nil
}
