package entity

import (
	"time"

	"github.com/google/uuid"
)

// PredictionDismissal records that a user silenced a predicted recurring
// payment. A nil ExpiresAt means the dismissal never expires, which is the
// conservative reading: a malformed expiry must not resurface a prediction
// the user explicitly dismissed.
type PredictionDismissal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	PredictionKey string
	DismissedAt   time.Time
	ExpiresAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewPredictionDismissal creates a new PredictionDismissal entity.
func NewPredictionDismissal(userID uuid.UUID, predictionKey string, expiresAt *time.Time) *PredictionDismissal {
	now := time.Now().UTC()

	return &PredictionDismissal{
		ID:            uuid.New(),
		UserID:        userID,
		PredictionKey: predictionKey,
		DismissedAt:   now,
		ExpiresAt:     expiresAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ActiveAt reports whether the dismissal still suppresses predictions for the
// given reference date (the first day of a target month).
func (d *PredictionDismissal) ActiveAt(reference time.Time) bool {
	if d.ExpiresAt == nil {
		return true
	}
	return !d.ExpiresAt.Before(reference)
}
