// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryIcon is the icon assigned to categories created without one.
const DefaultCategoryIcon = "pricetag"

// Category represents a payment category used to group payments. Deleting a
// category detaches it from its payments; it never cascades to them.
type Category struct {
	ID        uuid.UUID
	Name      string
	Icon      string
	CreatedAt time.Time
}

// NewCategory creates a new Category entity.
// Note: icon defaulting is applied in the application layer (use case)
// before calling this constructor.
func NewCategory(name, icon string) *Category {
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Icon:      icon,
		CreatedAt: time.Now().UTC(),
	}
}
