package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository implements the user persistence port using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// modelToEntity rebuilds a user entity from its database row
func (r *UserRepository) modelToEntity(m *model.User) *entity.User {
	user := &entity.User{
		ID:            m.ID,
		Email:         m.Email,
		LastClaim:     m.LastClaim,
		ClaimCooldown: m.ClaimCooldown,
		Payout: entity.PayoutDetails{
			AccountName:   strOrEmpty(m.AccountName),
			AccountNumber: strOrEmpty(m.AccountNumber),
			BankName:      strOrEmpty(m.BankName),
		},
		IsAdmin:   m.IsAdmin,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	user.SetBalanceCents(m.BalanceCents)
	user.SetEarnRateCents(m.EarnRateCents)
	return user
}

// mapLookupError standardizes read-path error handling
func (r *UserRepository) mapLookupError(err error, userID uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID.String(),
		})
		return errs.ErrUserNotFound
	}
	r.logger.Error("Database error looking up user", map[string]any{
		"user_id": userID.String(),
		"error":   err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrUserLookupFailed, err.Error())
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var m model.User
	result := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if result.Error != nil {
		return nil, r.mapLookupError(result.Error, id)
	}
	return r.modelToEntity(&m), nil
}

// Create inserts a new user record
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	m := model.User{
		ID:            user.ID,
		Email:         user.Email,
		BalanceCents:  user.BalanceCents(),
		EarnRateCents: user.EarnRateCents(),
		LastClaim:     user.LastClaim,
		ClaimCooldown: user.ClaimCooldown,
		AccountName:   strOrNil(user.Payout.AccountName),
		AccountNumber: strOrNil(user.Payout.AccountNumber),
		BankName:      strOrNil(user.Payout.BankName),
		IsAdmin:       user.IsAdmin,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicateUser
		}
		r.logger.Error("Failed to create user", map[string]any{
			"user_id": user.ID.String(),
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("User created", map[string]any{
		"user_id": user.ID.String(),
		"email":   user.Email,
	})
	return nil
}

// Update persists the mutable fields of a user record
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"balance_cents":   user.BalanceCents(),
			"earn_rate_cents": user.EarnRateCents(),
			"last_claim":      user.LastClaim,
			"account_name":    strOrNil(user.Payout.AccountName),
			"account_number":  strOrNil(user.Payout.AccountNumber),
			"bank_name":       strOrNil(user.Payout.BankName),
			"updated_at":      user.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update user", map[string]any{
			"user_id": user.ID.String(),
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// ApplyClaim credits one claim conditioned on last_claim still matching the
// value the caller observed. Zero rows affected means another session claimed
// in between; the caller gets ErrCooldownActive and no credit happens.
func (r *UserRepository) ApplyClaim(ctx context.Context, userID uuid.UUID, expectedLastClaim *time.Time, now time.Time) (*entity.User, error) {
	query := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID)
	if expectedLastClaim == nil {
		query = query.Where("last_claim IS NULL")
	} else {
		query = query.Where("last_claim = ?", *expectedLastClaim)
	}

	result := query.Updates(map[string]any{
		"balance_cents": gorm.Expr("balance_cents + earn_rate_cents"),
		"last_claim":    now,
		"updated_at":    now,
	})
	if result.Error != nil {
		r.logger.Error("Failed to apply claim", map[string]any{
			"user_id": userID.String(),
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		// Either the user vanished or a concurrent claim won the update
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Count(&count).Error; err == nil && count == 0 {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.ErrCooldownActive
	}

	return r.GetByID(ctx, userID)
}

// UpdateEarnRate persists a new earn rate
func (r *UserRepository) UpdateEarnRate(ctx context.Context, userID uuid.UUID, earnRateCents int64) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"earn_rate_cents": earnRateCents,
			"updated_at":      r.timeProvider.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// CreditBalance atomically adds cents to a user's balance
func (r *UserRepository) CreditBalance(ctx context.Context, userID uuid.UUID, cents int64) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"balance_cents": gorm.Expr("balance_cents + ?", cents),
			"updated_at":    r.timeProvider.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// TopByBalance returns the highest balances in descending order
func (r *UserRepository) TopByBalance(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	var rows []model.User
	result := r.db.WithContext(ctx).
		Order("balance_cents DESC").
		Limit(limit).
		Find(&rows)
	if result.Error != nil {
		r.logger.Error("Failed to query leaderboard", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	entries := make([]entity.LeaderboardEntry, 0, len(rows))
	for _, m := range rows {
		entries = append(entries, entity.LeaderboardEntry{
			Email:        m.Email,
			BalanceCents: m.BalanceCents,
		})
	}
	return entries, nil
}
