package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is the database model for payment verification audit rows
type Transaction struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	TxRef           string    `gorm:"uniqueIndex;not null;size:255"`
	FlutterwaveTxID string    `gorm:"not null;size:255"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	AmountCents     int64     `gorm:"not null"`
	Currency        string    `gorm:"not null;size:8"`
	Status          string    `gorm:"not null;size:16"`
	Metadata        string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
