package repositories

import "vendorhub/internal/models"

// RatingRepository defines the interface for rating data access.
//
// Create and Delete also refresh the target vendor's AvgRating and
// TotalReviews as part of the same logical operation, so the derived fields
// are never observably stale relative to the rating set.
type RatingRepository interface {
	GetByID(id string) (*models.Rating, error)
	GetByVendor(vendorID string) ([]models.Rating, error)
	Create(rating *models.Rating) error
	Delete(id string) error
}
