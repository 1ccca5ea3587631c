package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByUser retrieves all categories for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// FindEssentialNamesByUser retrieves the names of a user's essential categories.
	FindEssentialNamesByUser(ctx context.Context, userID uuid.UUID) ([]string, error)
}
