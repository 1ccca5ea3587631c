// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/wealth-tracker/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency  string          `gorm:"type:varchar(3);not null"`
	Type      string          `gorm:"type:varchar(10);not null;index"`
	Recipient string          `gorm:"type:varchar(255);not null;index"`
	Category  string          `gorm:"type:varchar(100);not null;index"`
	Account   string          `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Date:      m.Date,
		Amount:    m.Amount,
		Currency:  m.Currency,
		Type:      entity.TransactionType(m.Type),
		Recipient: m.Recipient,
		Category:  m.Category,
		Account:   m.Account,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:        transaction.ID,
		UserID:    transaction.UserID,
		Date:      transaction.Date,
		Amount:    transaction.Amount,
		Currency:  transaction.Currency,
		Type:      string(transaction.Type),
		Recipient: transaction.Recipient,
		Category:  transaction.Category,
		Account:   transaction.Account,
		CreatedAt: transaction.CreatedAt,
		UpdatedAt: transaction.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
