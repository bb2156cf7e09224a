package services

import (
	"fmt"
	"log"

	"vendorhub/internal/apperr"
	"vendorhub/internal/models"
	"vendorhub/internal/repositories"
	"vendorhub/pkg/rabbitmq"
)

// RatingService handles client feedback. Rating submission is public: there
// is no ownership check, only existence of the target vendor and a score in
// range.
type RatingService struct {
	ratingRepo repositories.RatingRepository
	vendorRepo repositories.VendorRepository
	mqClient   *rabbitmq.Client // optional, nil skips event publishing
}

// NewRatingService creates a new RatingService.
func NewRatingService(ratingRepo repositories.RatingRepository, vendorRepo repositories.VendorRepository, mqClient *rabbitmq.Client) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		vendorRepo: vendorRepo,
		mqClient:   mqClient,
	}
}

// GetRatingsByVendor retrieves a vendor's ratings, newest first.
func (s *RatingService) GetRatingsByVendor(vendorID string) ([]models.Rating, error) {
	return s.ratingRepo.GetByVendor(vendorID)
}

// CreateRating stores a new rating for an existing vendor. The repository
// refreshes the vendor's AvgRating and TotalReviews as part of the same
// operation. On success a rating.created event is published for out-of-band
// vendor notification; publish failures are logged, not surfaced.
func (s *RatingService) CreateRating(rating *models.Rating) error {
	if rating.Rating < 1 || rating.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5: %w", apperr.ErrInvalid)
	}

	// A missing vendor is already reported as ErrNotFound by the repository;
	// anything else (storage failure) must not masquerade as a 404.
	vendor, err := s.vendorRepo.GetByID(rating.VendorID)
	if err != nil {
		return err
	}

	if err := s.ratingRepo.Create(rating); err != nil {
		return err
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"ratingId":   rating.ID,
			"vendorId":   vendor.ID,
			"vendorName": vendor.VendorName,
			"clientName": rating.ClientName,
			"rating":     rating.Rating,
		}
		if err := s.mqClient.PublishRatingCreated(event); err != nil {
			log.Printf("Warning: failed to publish rating created event for rating %s: %v", rating.ID, err)
		}
	}

	return nil
}

// DeleteRating removes a rating; the repository recomputes the parent
// vendor's aggregate in the same operation. Not exposed on the HTTP surface.
func (s *RatingService) DeleteRating(id string) error {
	return s.ratingRepo.Delete(id)
}
