package repositories

import (
	"errors"

	"productos/internal/models"
)

// ErrProductNotFound is returned (wrapped) when no product matches the given ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns every product ordered by ID, newest first.
	GetAll() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	// Create persists the product and fills in its ID.
	Create(product *models.Product) error
	// Update overwrites name, price and availability of an existing product.
	Update(product *models.Product) error
	SetAvailability(id int, available bool) (*models.Product, error)
	Delete(id int) error
}
