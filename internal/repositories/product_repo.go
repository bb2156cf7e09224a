package repositories

import "vendorhub/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetByID(id string) (*models.Product, error)
	GetByVendor(vendorID string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
