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

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByVendor(vendorID string) ([]models.Product, error) {
	args := m.Called(vendorID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_GetProductsByVendor(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "p2", VendorID: "vendor-1", Name: "Teak Door"},
		{ID: "p1", VendorID: "vendor-1", Name: "Window Frame"},
	}

	mockRepo.On("GetByVendor", "vendor-1").Return(expectedProducts, nil).Once()

	products, err := service.GetProductsByVendor("vendor-1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	product := &models.Product{VendorID: "vendor-1", Name: "Teak Door"}

	// Owner creates their own product
	mockRepo.On("Create", product).Return(nil).Once()
	err := service.CreateProduct("vendor-1", product)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// A different session vendor cannot list under vendor-1
	err = service.CreateProduct("vendor-2", product)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// No session identity at all
	err = service.CreateProduct("", product)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	// Repo must not have been called for the rejected attempts
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	stored := &models.Product{ID: "p1", VendorID: "vendor-1", Name: "Teak Door", PriceRange: "5k-10k"}
	newName := "Teak Door Deluxe"

	// Owner update merges only the provided fields
	mockRepo.On("GetByID", "p1").Return(stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	updated, err := service.UpdateProduct("vendor-1", "p1", models.ProductUpdate{Name: &newName})
	assert.NoError(t, err)
	assert.Equal(t, "Teak Door Deluxe", updated.Name)
	assert.Equal(t, "5k-10k", updated.PriceRange)
	mockRepo.AssertExpectations(t)

	// Non-owner is rejected even though the session is otherwise valid
	mockRepo.On("GetByID", "p1").Return(stored, nil).Once()
	_, err = service.UpdateProduct("vendor-2", "p1", models.ProductUpdate{Name: &newName})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "Update", 1)

	// Missing product
	mockRepo.On("GetByID", "p99").Return(nil, fmt.Errorf("product p99: %w", apperr.ErrNotFound)).Once()
	_, err = service.UpdateProduct("vendor-1", "p99", models.ProductUpdate{Name: &newName})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	stored := &models.Product{ID: "p1", VendorID: "vendor-1", Name: "Teak Door"}

	// Owner deletes
	mockRepo.On("GetByID", "p1").Return(stored, nil).Once()
	mockRepo.On("Delete", "p1").Return(nil).Once()
	err := service.DeleteProduct("vendor-1", "p1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Non-owner cannot delete
	mockRepo.On("GetByID", "p1").Return(stored, nil).Once()
	err = service.DeleteProduct("vendor-2", "p1")
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "Delete", 1)
}
