package repositories_test

import (
	"fmt"
	"sync"
	"testing"

	"vendorhub/internal/apperr"
	"vendorhub/internal/models"
	"vendorhub/internal/repositories"

	"github.com/stretchr/testify/assert"
)

// The in-memory stores must keep the same aggregate and cascade behavior as
// the GORM implementations, since main wires them in when no database is
// configured.
func newMockStores() (*repositories.MockVendorRepository, *repositories.MockProductRepository, *repositories.MockRatingRepository) {
	vendors := repositories.NewMockVendorRepository()
	products := repositories.NewMockProductRepository()
	ratings := repositories.NewMockRatingRepository(vendors)
	vendors.Cascade(products, ratings)
	return vendors, products, ratings
}

func TestMockRatingRepository_AggregateWalk(t *testing.T) {
	vendors, _, ratings := newMockStores()

	vendor := &models.Vendor{Email: "agg@example.com", VendorName: "Sharma Constructions", PasswordHash: "x"}
	assert.NoError(t, vendors.Create(vendor))

	five := &models.Rating{VendorID: vendor.ID, ClientName: "A. Verma", ProjectName: "Site Office", Rating: 5}
	assert.NoError(t, ratings.Create(five))

	got, err := vendors.GetByID(vendor.ID)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, got.AvgRating)
	assert.Equal(t, 1, got.TotalReviews)

	three := &models.Rating{VendorID: vendor.ID, ClientName: "B. Rao", ProjectName: "Warehouse", Rating: 3}
	assert.NoError(t, ratings.Create(three))

	got, _ = vendors.GetByID(vendor.ID)
	assert.Equal(t, 4.0, got.AvgRating)
	assert.Equal(t, 2, got.TotalReviews)

	assert.NoError(t, ratings.Delete(five.ID))

	got, _ = vendors.GetByID(vendor.ID)
	assert.Equal(t, 3.0, got.AvgRating)
	assert.Equal(t, 1, got.TotalReviews)
}

func TestMockRatingRepository_ConcurrentCreates(t *testing.T) {
	vendors, _, ratings := newMockStores()

	vendor := &models.Vendor{Email: "race@example.com", VendorName: "Sharma Constructions", PasswordHash: "x"}
	assert.NoError(t, vendors.Create(vendor))

	// Each create holds the store's write lock across insert and recompute,
	// so the final aggregate must account for every submission exactly.
	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			score := 3 + i%2 // alternating 3s and 4s
			err := ratings.Create(&models.Rating{
				VendorID:    vendor.ID,
				ClientName:  fmt.Sprintf("Client %d", i),
				ProjectName: "Tower",
				Rating:      score,
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := vendors.GetByID(vendor.ID)
	assert.NoError(t, err)
	assert.Equal(t, n, got.TotalReviews)
	assert.Equal(t, 3.5, got.AvgRating)
}

func TestMockVendorRepository_DeleteCascades(t *testing.T) {
	vendors, products, ratings := newMockStores()

	vendor := &models.Vendor{Email: "cascade@example.com", VendorName: "Sharma Constructions", PasswordHash: "x"}
	assert.NoError(t, vendors.Create(vendor))

	product := &models.Product{VendorID: vendor.ID, Name: "Teak Door"}
	assert.NoError(t, products.Create(product))
	rating := &models.Rating{VendorID: vendor.ID, ClientName: "A. Verma", ProjectName: "Bungalow", Rating: 4}
	assert.NoError(t, ratings.Create(rating))

	assert.NoError(t, vendors.Delete(vendor.ID))

	_, err := products.GetByID(product.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = ratings.GetByID(rating.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMockVendorRepository_GetByEmail(t *testing.T) {
	vendors, _, _ := newMockStores()

	vendor := &models.Vendor{Email: "lookup@example.com", VendorName: "Sharma Constructions", PasswordHash: "x"}
	assert.NoError(t, vendors.Create(vendor))

	got, err := vendors.GetByEmail("lookup@example.com")
	assert.NoError(t, err)
	assert.Equal(t, vendor.ID, got.ID)

	_, err = vendors.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
