package repositories

import "vendorhub/internal/models"

// VendorRepository defines the interface for vendor data access.
type VendorRepository interface {
	GetByID(id string) (*models.Vendor, error)
	GetByEmail(email string) (*models.Vendor, error)
	GetAll() ([]models.Vendor, error)
	Create(vendor *models.Vendor) error
	Update(vendor *models.Vendor) error
	Delete(id string) error
}
