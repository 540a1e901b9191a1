package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the database model for earner accounts
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"uniqueIndex;not null;size:255"`
	BalanceCents  int64     `gorm:"not null;default:0;check:balance_cents >= 0"`
	EarnRateCents int64     `gorm:"not null;default:0;check:earn_rate_cents >= 0"`
	LastClaim     *time.Time
	ClaimCooldown int     `gorm:"not null;default:6"`
	AccountName   *string `gorm:"size:255"`
	AccountNumber *string `gorm:"size:32"`
	BankName      *string `gorm:"size:255"`
	IsAdmin       bool    `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
