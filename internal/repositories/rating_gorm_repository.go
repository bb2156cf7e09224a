package repositories

import (
	"errors"
	"fmt"
	"math"
	"time"

	"vendorhub/internal/apperr"
	"vendorhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRatingRepository is a GORM implementation of RatingRepository.
type GORMRatingRepository struct {
	db *gorm.DB
}

// NewGORMRatingRepository creates a new instance of GORMRatingRepository.
func NewGORMRatingRepository(db *gorm.DB) *GORMRatingRepository {
	return &GORMRatingRepository{
		db: db,
	}
}

// GetByID retrieves a single rating by its ID from the database.
func (r *GORMRatingRepository) GetByID(id string) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.First(&rating, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("rating %s: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get rating by ID %s: %w", id, err)
	}
	return &rating, nil
}

// GetByVendor retrieves all ratings targeting a vendor, newest first.
func (r *GORMRatingRepository) GetByVendor(vendorID string) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.Where("vendor_id = ?", vendorID).Order("created_at DESC").Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to get ratings for vendor %s: %w", vendorID, err)
	}
	return ratings, nil
}

// Create inserts a new rating and refreshes the target vendor's aggregate
// fields. Both writes run in one transaction so concurrent submissions can
// never leave the aggregate short of the true rating set.
func (r *GORMRatingRepository) Create(rating *models.Rating) error {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rating).Error; err != nil {
			return err
		}
		return refreshVendorAggregate(tx, rating.VendorID)
	})
	if err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

// Delete removes a rating and refreshes the parent vendor's aggregate fields
// in the same transaction.
func (r *GORMRatingRepository) Delete(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var rating models.Rating
		if err := tx.First(&rating, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("rating %s: %w", id, apperr.ErrNotFound)
			}
			return err
		}
		if err := tx.Delete(&models.Rating{}, "id = ?", id).Error; err != nil {
			return err
		}
		return refreshVendorAggregate(tx, rating.VendorID)
	})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	return nil
}

// refreshVendorAggregate recomputes a vendor's AvgRating and TotalReviews
// from the full rating set. Full recomputation is O(n) per write, which is
// fine at review volumes; the average is rounded to 2 decimal places and
// falls back to 0 when the last rating is deleted.
func refreshVendorAggregate(tx *gorm.DB, vendorID string) error {
	var ratings []models.Rating
	if err := tx.Where("vendor_id = ?", vendorID).Find(&ratings).Error; err != nil {
		return err
	}

	totalReviews := len(ratings)
	avgRating := 0.0
	if totalReviews > 0 {
		sum := 0
		for _, rt := range ratings {
			sum += rt.Rating
		}
		avgRating = math.Round(float64(sum)/float64(totalReviews)*100) / 100
	}

	return tx.Model(&models.Vendor{}).Where("id = ?", vendorID).Updates(map[string]interface{}{
		"avg_rating":    avgRating,
		"total_reviews": totalReviews,
		"updated_at":    time.Now(),
	}).Error
}
