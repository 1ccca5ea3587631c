package dto

import (
	"github.com/wealth-tracker/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date      string  `json:"date" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Currency  string  `json:"currency" binding:"required,len=3"`
	Type      string  `json:"type" binding:"required,oneof=expense income"`
	Recipient string  `json:"recipient" binding:"required,min=1,max=255"`
	Category  string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Account   string  `json:"account,omitempty" binding:"omitempty,max=100"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Type      string `json:"type"`
	Recipient string `json:"recipient"`
	Category  string `json:"category"`
	Account   string `json:"account"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:        txn.ID.String(),
		Date:      txn.Date.Format("2006-01-02"),
		Amount:    txn.Amount.String(),
		Currency:  txn.Currency,
		Type:      string(txn.Type),
		Recipient: txn.Recipient,
		Category:  txn.Category,
		Account:   txn.Account,
	}
}

// ToTransactionListResponse converts listing output to its response DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{Transactions: transactions}
}
