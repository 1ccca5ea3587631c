package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wealth-tracker/backend/internal/application/adapter"
	"github.com/wealth-tracker/backend/internal/domain/entity"
	"github.com/wealth-tracker/backend/internal/integration/persistence/model"
)

// predictionDismissalRepository implements the adapter.DismissalRepository interface.
type predictionDismissalRepository struct {
	db *gorm.DB
}

// NewPredictionDismissalRepository creates a new prediction dismissal repository instance.
func NewPredictionDismissalRepository(db *gorm.DB) adapter.DismissalRepository {
	return &predictionDismissalRepository{
		db: db,
	}
}

// Upsert inserts a dismissal or refreshes the existing row when the user
// already dismissed the same prediction key.
func (r *predictionDismissalRepository) Upsert(ctx context.Context, dismissal *entity.PredictionDismissal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.PredictionDismissalModel
		err := tx.
			Where("user_id = ? AND prediction_key = ?", dismissal.UserID, dismissal.PredictionKey).
			First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(model.PredictionDismissalFromEntity(dismissal)).Error
		}
		if err != nil {
			return err
		}

		result := tx.Model(&model.PredictionDismissalModel{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"dismissed_at": dismissal.DismissedAt,
				"expires_at":   dismissal.ExpiresAt,
				"updated_at":   time.Now().UTC(),
			})
		return result.Error
	})
}

// FindActiveKeys returns the prediction keys whose dismissals still apply at
// the reference date. A missing expiry counts as active.
func (r *predictionDismissalRepository) FindActiveKeys(ctx context.Context, userID uuid.UUID, reference time.Time) ([]string, error) {
	var keys []string
	result := r.db.WithContext(ctx).
		Model(&model.PredictionDismissalModel{}).
		Select("prediction_key").
		Where("user_id = ?", userID).
		Where("expires_at IS NULL OR expires_at >= ?", reference).
		Scan(&keys)
	if result.Error != nil {
		return nil, result.Error
	}
	return keys, nil
}
