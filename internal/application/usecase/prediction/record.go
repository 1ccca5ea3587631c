// Package prediction contains recurring-payment detection and prediction use cases.
package prediction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-tracker/backend/internal/domain/entity"
)

// Record is the detection input shape: one historical transaction as supplied
// by the transaction store or a statement import. Date is a string because
// upstream sources disagree on format; rows whose date cannot be parsed are
// dropped during grouping rather than failing the whole analysis.
type Record struct {
	Date      string
	Amount    decimal.Decimal
	Currency  string
	Type      entity.TransactionType
	Recipient string
	Category  string
}

// recordDateLayouts are tried in order when normalizing a record date.
var recordDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseRecordDate normalizes a record date string to a calendar date.
func parseRecordDate(value string) (time.Time, bool) {
	for _, layout := range recordDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// RecordFromTransaction converts a ledger entity into a detection record.
func RecordFromTransaction(t *entity.Transaction) Record {
	return Record{
		Date:      t.Date.Format("2006-01-02"),
		Amount:    t.Amount,
		Currency:  t.Currency,
		Type:      t.Type,
		Recipient: t.Recipient,
		Category:  t.Category,
	}
}
