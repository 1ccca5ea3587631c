// Package valueobject contains domain value objects for the Wealth Tracker system.
package valueobject

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-tracker/backend/internal/domain/entity"
)

// RecurrenceType classifies the cadence of a detected recurring payment.
type RecurrenceType string

const (
	RecurrenceMonthly   RecurrenceType = "monthly"
	RecurrenceQuarterly RecurrenceType = "quarterly"
	RecurrenceYearly    RecurrenceType = "yearly"
)

// GroupKey identifies a recurrence candidate group. Comparison is exact
// string equality on all three fields; no normalization is applied.
type GroupKey struct {
	Recipient string
	Category  string
	Type      entity.TransactionType
}

// Occurrence is one historical transaction matched into a recurring run.
type Occurrence struct {
	Date     time.Time
	Amount   decimal.Decimal
	Currency string
}

// Pattern is the result of a successful cadence match on one group.
type Pattern struct {
	Recipient       string
	Category        string
	Type            entity.TransactionType
	Recurrence      RecurrenceType
	AverageAmount   decimal.Decimal // Absolute magnitude
	TypicalDay      int             // Median day-of-month across occurrences
	Currency        string
	Confidence      float64 // In [0,1], rounded to 2 decimals
	OccurrenceCount int
	LastDate        time.Time
	History         []Occurrence // Oldest to newest
	PredictionKey   string
}

// PredictedAccount tags synthetic transactions so the UI can distinguish
// them from real ledger entries.
const PredictedAccount = "Predicted"

// Prediction is a synthetic transaction-shaped record for a target month.
type Prediction struct {
	Date          time.Time
	Amount        decimal.Decimal // Signed per transaction type
	Currency      string
	Type          entity.TransactionType
	Recipient     string
	Description   string
	Category      string
	Account       string
	IsPredicted   bool
	PredictionKey string
	Confidence    float64
	Recurrence    RecurrenceType
	BasedOn       []Occurrence
}

// NewPredictionKey derives the stable identity of a recurring obligation.
// It depends only on recipient, category and cadence, so a dismissal stays
// valid as new occurrences arrive or the amount drifts.
func NewPredictionKey(recipient, category string, recurrence RecurrenceType) string {
	sum := sha256.Sum256([]byte(recipient + "|" + category + "|" + string(recurrence)))
	return hex.EncodeToString(sum[:])[:16]
}
