package services

import (
	"vendorhub/internal/models"
	"vendorhub/internal/repositories"
)

// ProductService handles business logic related to products. Every mutation
// is gated on the acting vendor owning the product.
type ProductService struct {
	productRepo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// GetProductsByVendor retrieves a vendor's products, newest first.
func (s *ProductService) GetProductsByVendor(vendorID string) ([]models.Product, error) {
	return s.productRepo.GetByVendor(vendorID)
}

// CreateProduct creates a new product owned by the acting vendor. A product
// may only be listed under the actor's own vendor ID.
func (s *ProductService) CreateProduct(actorID string, product *models.Product) error {
	if err := authorize(actorID, product.VendorID); err != nil {
		return err
	}
	return s.productRepo.Create(product)
}

// UpdateProduct merges the provided fields into an existing product.
// Ownership is resolved by loading the product and comparing its VendorID
// against the acting vendor.
func (s *ProductService) UpdateProduct(actorID, id string, update models.ProductUpdate) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actorID, product.VendorID); err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.ImageURL != nil {
		product.ImageURL = *update.ImageURL
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.PriceRange != nil {
		product.PriceRange = *update.PriceRange
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product after checking the acting vendor owns it.
func (s *ProductService) DeleteProduct(actorID, id string) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := authorize(actorID, product.VendorID); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}
