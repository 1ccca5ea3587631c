package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-tracker/backend/internal/application/adapter"
	"github.com/wealth-tracker/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// TransactionOutput is the use-case level view of a transaction.
type TransactionOutput struct {
	ID        uuid.UUID
	Date      time.Time
	Amount    decimal.Decimal
	Currency  string
	Type      entity.TransactionType
	Recipient string
	Category  string
	Account   string
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's transactions, optionally bounded by date range.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	var (
		transactions []*entity.Transaction
		err          error
	)

	if input.StartDate != nil && input.EndDate != nil {
		transactions, err = uc.transactionRepo.FindByUserAndRange(ctx, input.UserID, *input.StartDate, *input.EndDate)
	} else {
		transactions, err = uc.transactionRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	outputs := make([]*TransactionOutput, len(transactions))
	for i, txn := range transactions {
		outputs[i] = toTransactionOutput(txn)
	}

	return &ListTransactionsOutput{Transactions: outputs}, nil
}

// toTransactionOutput maps a transaction entity to its use-case output.
func toTransactionOutput(txn *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:        txn.ID,
		Date:      txn.Date,
		Amount:    txn.Amount,
		Currency:  txn.Currency,
		Type:      txn.Type,
		Recipient: txn.Recipient,
		Category:  txn.Category,
		Account:   txn.Account,
	}
}
