// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// CategoryInternalTransfer marks transfers between a user's own accounts.
// Transactions in this category never participate in recurrence detection.
const CategoryInternalTransfer = "Internal Transfer"

// CategoryUncategorized is assigned when a parsed statement row carries no category.
const CategoryUncategorized = "Uncategorized"

// Transaction represents a financial transaction in the Wealth Tracker system.
// Recipient and Category are free-text labels as delivered by the statement
// parsers; the recurrence detector groups on their exact string values.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	Amount    decimal.Decimal // Negative for expenses, positive for income
	Currency  string
	Type      TransactionType
	Recipient string
	Category  string
	Account   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	amount decimal.Decimal,
	currency string,
	transactionType TransactionType,
	recipient string,
	category string,
	account string,
) *Transaction {
	now := time.Now().UTC()

	if category == "" {
		category = CategoryUncategorized
	}

	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		Amount:    amount,
		Currency:  currency,
		Type:      transactionType,
		Recipient: recipient,
		Category:  category,
		Account:   account,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Magnitude returns the absolute amount of the transaction.
func (t *Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}
