package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	"github.com/Akachukwuu/earnquiza/internal/domain/port/persistence"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WithdrawRepository implements the withdraw request persistence port using GORM
type WithdrawRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewWithdrawRepository creates a new WithdrawRepository instance
func NewWithdrawRepository(db *gorm.DB, logger coreport.Logger) *WithdrawRepository {
	return &WithdrawRepository{db: db, logger: logger}
}

func (r *WithdrawRepository) modelToEntity(m *model.WithdrawRequest) *entity.WithdrawRequest {
	return &entity.WithdrawRequest{
		ID:          m.ID,
		UserID:      m.UserID,
		AmountCents: m.AmountCents,
		Status:      entity.WithdrawStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Create inserts a new pending request
func (r *WithdrawRepository) Create(ctx context.Context, request *entity.WithdrawRequest) error {
	m := model.WithdrawRequest{
		ID:          request.ID,
		UserID:      request.UserID,
		AmountCents: request.AmountCents,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		r.logger.Error("Failed to create withdraw request", map[string]any{
			"request_id": request.ID.String(),
			"user_id":    request.UserID.String(),
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// GetByID retrieves a request by id
func (r *WithdrawRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WithdrawRequest, error) {
	var m model.WithdrawRequest
	result := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrWithdrawRequestNotFound
		}
		r.logger.Error("Database error looking up withdraw request", map[string]any{
			"request_id": id.String(),
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(&m), nil
}

// Update persists a status transition
func (r *WithdrawRepository) Update(ctx context.Context, request *entity.WithdrawRequest) error {
	result := r.db.WithContext(ctx).Model(&model.WithdrawRequest{}).
		Where("id = ?", request.ID).
		Updates(map[string]any{
			"status":     string(request.Status),
			"updated_at": request.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrWithdrawRequestNotFound
	}
	return nil
}

// withdrawListingRow is the scan target for the joined admin listing
type withdrawListingRow struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	AmountCents   int64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Email         string
	AccountName   *string
	AccountNumber *string
	BankName      *string
}

// ListNewestFirst returns all requests joined with owner payout details
func (r *WithdrawRepository) ListNewestFirst(ctx context.Context) ([]persistence.WithdrawListing, error) {
	var rows []withdrawListingRow
	result := r.db.WithContext(ctx).
		Table("withdraw_requests").
		Select("withdraw_requests.id, withdraw_requests.user_id, withdraw_requests.amount_cents, withdraw_requests.status, withdraw_requests.created_at, withdraw_requests.updated_at, users.email, users.account_name, users.account_number, users.bank_name").
		Joins("JOIN users ON users.id = withdraw_requests.user_id").
		Order("withdraw_requests.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		r.logger.Error("Failed to list withdraw requests", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	listings := make([]persistence.WithdrawListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, persistence.WithdrawListing{
			Request: entity.WithdrawRequest{
				ID:          row.ID,
				UserID:      row.UserID,
				AmountCents: row.AmountCents,
				Status:      entity.WithdrawStatus(row.Status),
				CreatedAt:   row.CreatedAt,
				UpdatedAt:   row.UpdatedAt,
			},
			OwnerEmail: row.Email,
			Payout: entity.PayoutDetails{
				AccountName:   strOrEmpty(row.AccountName),
				AccountNumber: strOrEmpty(row.AccountNumber),
				BankName:      strOrEmpty(row.BankName),
			},
		})
	}
	return listings, nil
}
