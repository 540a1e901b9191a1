package migration

import (
	"errors"
	"fmt"

	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Manager applies schema migrations and seed data
type Manager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewManager creates a new migration manager
func NewManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll brings the schema up to date
func (m *Manager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	if err := m.db.AutoMigrate(
		&model.User{},
		&model.Transaction{},
		&model.WithdrawRequest{},
	); err != nil {
		m.logger.Error("Failed to migrate database schema", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}

// SeedAdminUser creates the admin account if it does not exist yet.
// An empty email disables seeding.
func (m *Manager) SeedAdminUser(email string, claimCooldown int) error {
	if email == "" {
		return nil
	}

	var existing model.User
	err := m.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		if existing.IsAdmin {
			return nil
		}
		return m.db.Model(&model.User{}).
			Where("id = ?", existing.ID).
			Update("is_admin", true).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	now := m.timeProvider.Now()
	admin := model.User{
		ID:            uuid.New(),
		Email:         email,
		ClaimCooldown: claimCooldown,
		IsAdmin:       true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := m.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	m.logger.Info("Seeded admin user", map[string]any{"email": email})
	return nil
}
