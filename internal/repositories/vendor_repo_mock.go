package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"vendorhub/internal/apperr"
	"vendorhub/internal/models"

	"github.com/google/uuid"
)

// MockVendorRepository is an in-memory implementation of VendorRepository.
type MockVendorRepository struct {
	vendors map[string]models.Vendor
	mu      sync.RWMutex

	// Attached via Cascade so Delete can mirror the database's
	// ON DELETE CASCADE behavior.
	products *MockProductRepository
	ratings  *MockRatingRepository
}

// NewMockVendorRepository creates a new instance of MockVendorRepository.
func NewMockVendorRepository() *MockVendorRepository {
	return &MockVendorRepository{
		vendors: make(map[string]models.Vendor),
	}
}

// Cascade attaches the product and rating stores whose records are purged
// when a vendor is deleted.
func (r *MockVendorRepository) Cascade(products *MockProductRepository, ratings *MockRatingRepository) {
	r.products = products
	r.ratings = ratings
}

// GetByID returns a vendor by its ID.
func (r *MockVendorRepository) GetByID(id string) (*models.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendor, ok := r.vendors[id]
	if !ok {
		return nil, fmt.Errorf("vendor %s: %w", id, apperr.ErrNotFound)
	}
	return &vendor, nil
}

// GetByEmail returns a vendor by its registered email.
func (r *MockVendorRepository) GetByEmail(email string) (*models.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.vendors {
		if v.Email == email {
			vendor := v
			return &vendor, nil
		}
	}
	return nil, fmt.Errorf("vendor with email %s: %w", email, apperr.ErrNotFound)
}

// GetAll returns all vendors, newest first.
func (r *MockVendorRepository) GetAll() ([]models.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendorList := make([]models.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		vendorList = append(vendorList, v)
	}
	sort.Slice(vendorList, func(i, j int) bool {
		return vendorList[i].CreatedAt.After(vendorList[j].CreatedAt)
	})
	return vendorList, nil
}

// Create adds a new vendor.
func (r *MockVendorRepository) Create(vendor *models.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if vendor.ID == "" {
		vendor.ID = uuid.New().String()
	}
	now := time.Now()
	if vendor.CreatedAt.IsZero() {
		vendor.CreatedAt = now
	}
	vendor.UpdatedAt = now
	r.vendors[vendor.ID] = *vendor
	return nil
}

// Update modifies an existing vendor.
func (r *MockVendorRepository) Update(vendor *models.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.vendors[vendor.ID]
	if !ok {
		return fmt.Errorf("vendor %s: %w", vendor.ID, apperr.ErrNotFound)
	}
	vendor.UpdatedAt = time.Now()
	r.vendors[vendor.ID] = *vendor
	return nil
}

// Delete removes a vendor and purges its products and ratings.
func (r *MockVendorRepository) Delete(id string) error {
	r.mu.Lock()
	_, ok := r.vendors[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("vendor %s: %w", id, apperr.ErrNotFound)
	}
	delete(r.vendors, id)
	r.mu.Unlock()

	if r.products != nil {
		r.products.removeByVendor(id)
	}
	if r.ratings != nil {
		r.ratings.removeByVendor(id)
	}
	return nil
}
