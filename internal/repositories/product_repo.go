package repositories

import (
	"github.com/Ishita1406/groceryApp/internal/models"
)

// ProductFilter narrows a product listing. Empty fields apply no constraint.
type ProductFilter struct {
	// NameContains is matched as a case-insensitive substring of the name.
	NameContains string
	// Category is matched exactly.
	Category string
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// List returns one page of matching products ordered by creation time
	// descending (ties broken by id descending), plus the total number of
	// matching products before pagination.
	List(filter ProductFilter, page, limit int) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
