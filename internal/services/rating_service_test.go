package services_test

import (
	"fmt"
	"testing"

	"vendorhub/internal/apperr"
	"vendorhub/internal/models"
	"vendorhub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRatingRepository is a mock implementation of repositories.RatingRepository
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) GetByID(id string) (*models.Rating, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByVendor(vendorID string) ([]models.Rating, error) {
	args := m.Called(vendorID)
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) Create(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestRatingService_CreateRating(t *testing.T) {
	mockRatings := new(MockRatingRepository)
	mockVendors := new(MockVendorRepository)
	service := services.NewRatingService(mockRatings, mockVendors, nil)

	vendor := &models.Vendor{ID: "vendor-1", VendorName: "Sharma Constructions"}
	rating := &models.Rating{
		VendorID:    "vendor-1",
		ClientName:  "A. Verma",
		ProjectName: "Site Office",
		Rating:      5,
	}

	// Anyone may rate an existing vendor; no ownership check applies
	mockVendors.On("GetByID", "vendor-1").Return(vendor, nil).Once()
	mockRatings.On("Create", rating).Return(nil).Once()
	err := service.CreateRating(rating)
	assert.NoError(t, err)
	mockRatings.AssertExpectations(t)
	mockVendors.AssertExpectations(t)
}

func TestRatingService_CreateRating_ScoreOutOfRange(t *testing.T) {
	mockRatings := new(MockRatingRepository)
	mockVendors := new(MockVendorRepository)
	service := services.NewRatingService(mockRatings, mockVendors, nil)

	for _, score := range []int{0, -1, 6, 100} {
		err := service.CreateRating(&models.Rating{VendorID: "vendor-1", ClientName: "A. Verma", ProjectName: "Site Office", Rating: score})
		assert.ErrorIs(t, err, apperr.ErrInvalid, "score %d should be rejected", score)
	}

	// Nothing was looked up or stored
	mockVendors.AssertNotCalled(t, "GetByID", mock.Anything)
	mockRatings.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRatingService_CreateRating_VendorMissing(t *testing.T) {
	mockRatings := new(MockRatingRepository)
	mockVendors := new(MockVendorRepository)
	service := services.NewRatingService(mockRatings, mockVendors, nil)

	mockVendors.On("GetByID", "ghost").Return(nil, fmt.Errorf("vendor ghost: %w", apperr.ErrNotFound)).Once()

	err := service.CreateRating(&models.Rating{VendorID: "ghost", ClientName: "A. Verma", ProjectName: "Site Office", Rating: 4})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	mockVendors.AssertExpectations(t)
	mockRatings.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRatingService_CreateRating_StorageFailure(t *testing.T) {
	mockRatings := new(MockRatingRepository)
	mockVendors := new(MockVendorRepository)
	service := services.NewRatingService(mockRatings, mockVendors, nil)

	// A storage outage during the vendor lookup must surface as-is, not as
	// a missing vendor.
	mockVendors.On("GetByID", "vendor-1").Return(nil, fmt.Errorf("connection refused")).Once()

	err := service.CreateRating(&models.Rating{VendorID: "vendor-1", ClientName: "A. Verma", ProjectName: "Site Office", Rating: 4})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperr.ErrNotFound)
	assert.Contains(t, err.Error(), "connection refused")
	mockVendors.AssertExpectations(t)
	mockRatings.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRatingService_DeleteRating(t *testing.T) {
	mockRatings := new(MockRatingRepository)
	mockVendors := new(MockVendorRepository)
	service := services.NewRatingService(mockRatings, mockVendors, nil)

	mockRatings.On("Delete", "r1").Return(nil).Once()
	assert.NoError(t, service.DeleteRating("r1"))

	mockRatings.On("Delete", "r99").Return(fmt.Errorf("rating r99: %w", apperr.ErrNotFound)).Once()
	assert.ErrorIs(t, service.DeleteRating("r99"), apperr.ErrNotFound)
	mockRatings.AssertExpectations(t)
}
