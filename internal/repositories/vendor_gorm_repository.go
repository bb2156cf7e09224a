package repositories

import (
	"errors"
	"fmt"

	"vendorhub/internal/apperr"
	"vendorhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMVendorRepository is a GORM implementation of VendorRepository.
type GORMVendorRepository struct {
	db *gorm.DB
}

// NewGORMVendorRepository creates a new instance of GORMVendorRepository.
func NewGORMVendorRepository(db *gorm.DB) *GORMVendorRepository {
	return &GORMVendorRepository{
		db: db,
	}
}

// GetByID retrieves a single vendor by its ID from the database.
func (r *GORMVendorRepository) GetByID(id string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.First(&vendor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vendor %s: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vendor by ID %s: %w", id, err)
	}
	return &vendor, nil
}

// GetByEmail retrieves a vendor by its registered email from the database.
func (r *GORMVendorRepository) GetByEmail(email string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.First(&vendor, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vendor with email %s: %w", email, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vendor by email %s: %w", email, err)
	}
	return &vendor, nil
}

// GetAll retrieves all vendors from the database, newest first.
func (r *GORMVendorRepository) GetAll() ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.db.Order("created_at DESC").Find(&vendors).Error; err != nil {
		return nil, fmt.Errorf("failed to get all vendors: %w", err)
	}
	return vendors, nil
}

// Create creates a new vendor in the database.
func (r *GORMVendorRepository) Create(vendor *models.Vendor) error {
	if vendor.ID == "" {
		vendor.ID = uuid.New().String()
	}
	if err := r.db.Create(vendor).Error; err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	return nil
}

// Update updates an existing vendor in the database.
func (r *GORMVendorRepository) Update(vendor *models.Vendor) error {
	res := r.db.Save(vendor)
	if res.Error != nil {
		return fmt.Errorf("failed to update vendor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("vendor %s: %w", vendor.ID, apperr.ErrNotFound)
	}
	return nil
}

// Delete deletes a vendor by its ID. Dependent products and ratings are
// removed by the ON DELETE CASCADE constraint.
func (r *GORMVendorRepository) Delete(id string) error {
	res := r.db.Delete(&models.Vendor{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete vendor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("vendor %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}
