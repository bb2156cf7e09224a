package repositories

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"vendorhub/internal/apperr"
	"vendorhub/internal/models"

	"github.com/google/uuid"
)

// MockRatingRepository is an in-memory implementation of RatingRepository.
// It writes the vendor aggregate fields through the supplied vendor
// repository, mirroring what the GORM implementation does in a transaction.
type MockRatingRepository struct {
	ratings map[string]models.Rating
	vendors VendorRepository
	mu      sync.RWMutex
}

// NewMockRatingRepository creates a new instance of MockRatingRepository.
func NewMockRatingRepository(vendors VendorRepository) *MockRatingRepository {
	return &MockRatingRepository{
		ratings: make(map[string]models.Rating),
		vendors: vendors,
	}
}

// GetByID returns a rating by its ID.
func (r *MockRatingRepository) GetByID(id string) (*models.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rating, ok := r.ratings[id]
	if !ok {
		return nil, fmt.Errorf("rating %s: %w", id, apperr.ErrNotFound)
	}
	return &rating, nil
}

// GetByVendor returns all ratings targeting a vendor, newest first.
func (r *MockRatingRepository) GetByVendor(vendorID string) ([]models.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.ratingsForVendor(vendorID), nil
}

// ratingsForVendor collects a vendor's ratings newest first. Callers must
// hold at least a read lock.
func (r *MockRatingRepository) ratingsForVendor(vendorID string) []models.Rating {
	ratingList := make([]models.Rating, 0)
	for _, rt := range r.ratings {
		if rt.VendorID == vendorID {
			ratingList = append(ratingList, rt)
		}
	}
	sort.Slice(ratingList, func(i, j int) bool {
		return ratingList[i].CreatedAt.After(ratingList[j].CreatedAt)
	})
	return ratingList
}

// Create adds a new rating and refreshes the target vendor's aggregate.
// The write lock is held across both steps so concurrent submissions are
// serialized the same way the GORM transaction serializes them.
func (r *MockRatingRepository) Create(rating *models.Rating) error {
	vendor, err := r.vendors.GetByID(rating.VendorID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now()
	}
	r.ratings[rating.ID] = *rating

	return r.writeVendorAggregate(vendor)
}

// Delete removes a rating and refreshes the parent vendor's aggregate,
// holding the write lock across both steps.
func (r *MockRatingRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rating, ok := r.ratings[id]
	if !ok {
		return fmt.Errorf("rating %s: %w", id, apperr.ErrNotFound)
	}

	vendor, err := r.vendors.GetByID(rating.VendorID)
	if err != nil {
		return err
	}
	delete(r.ratings, id)

	return r.writeVendorAggregate(vendor)
}

// removeByVendor drops every rating targeting a vendor without touching the
// aggregate; the vendor record itself is gone. Used by the vendor store's
// cascade delete.
func (r *MockRatingRepository) removeByVendor(vendorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, rt := range r.ratings {
		if rt.VendorID == vendorID {
			delete(r.ratings, id)
		}
	}
}

// writeVendorAggregate recomputes AvgRating and TotalReviews from the full
// rating set and writes them back to the vendor. Callers must hold the
// write lock.
func (r *MockRatingRepository) writeVendorAggregate(vendor *models.Vendor) error {
	ratingList := r.ratingsForVendor(vendor.ID)

	totalReviews := len(ratingList)
	avgRating := 0.0
	if totalReviews > 0 {
		sum := 0
		for _, rt := range ratingList {
			sum += rt.Rating
		}
		avgRating = math.Round(float64(sum)/float64(totalReviews)*100) / 100
	}

	vendor.AvgRating = avgRating
	vendor.TotalReviews = totalReviews
	return r.vendors.Update(vendor)
}
