package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a user-owned spending category.
// Essential categories feed the average-essential-spending calculation.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Essential bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name string, essential bool) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Essential: essential,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
