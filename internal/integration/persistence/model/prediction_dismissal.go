package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/wealth-tracker/backend/internal/domain/entity"
)

// PredictionDismissalModel represents the prediction_dismissals table in the database.
// A user may dismiss each prediction key at most once; repeated dismissals
// refresh the existing row.
type PredictionDismissalModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_dismissals_user_key"`
	PredictionKey string     `gorm:"type:varchar(16);not null;uniqueIndex:idx_dismissals_user_key"`
	DismissedAt   time.Time  `gorm:"not null"`
	ExpiresAt     *time.Time `gorm:"type:timestamp;index"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

// TableName returns the table name for the PredictionDismissalModel.
func (PredictionDismissalModel) TableName() string {
	return "prediction_dismissals"
}

// ToEntity converts a PredictionDismissalModel to a domain PredictionDismissal entity.
func (m *PredictionDismissalModel) ToEntity() *entity.PredictionDismissal {
	return &entity.PredictionDismissal{
		ID:            m.ID,
		UserID:        m.UserID,
		PredictionKey: m.PredictionKey,
		DismissedAt:   m.DismissedAt,
		ExpiresAt:     m.ExpiresAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// PredictionDismissalFromEntity creates a PredictionDismissalModel from a domain entity.
func PredictionDismissalFromEntity(dismissal *entity.PredictionDismissal) *PredictionDismissalModel {
	return &PredictionDismissalModel{
		ID:            dismissal.ID,
		UserID:        dismissal.UserID,
		PredictionKey: dismissal.PredictionKey,
		DismissedAt:   dismissal.DismissedAt,
		ExpiresAt:     dismissal.ExpiresAt,
		CreatedAt:     dismissal.CreatedAt,
		UpdatedAt:     dismissal.UpdatedAt,
	}
}
