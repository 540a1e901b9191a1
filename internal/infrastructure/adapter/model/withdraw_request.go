package model

import (
	"time"

	"github.com/google/uuid"
)

// WithdrawRequest is the database model for payout requests
type WithdrawRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	AmountCents int64     `gorm:"not null"`
	Status      string    `gorm:"not null;size:16;index"`
	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for WithdrawRequest
func (WithdrawRequest) TableName() string {
	return "withdraw_requests"
}
