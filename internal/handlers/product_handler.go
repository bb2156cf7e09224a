package handlers

import (
	"log"

	"vendorhub/internal/middleware"
	"vendorhub/internal/models"
	"vendorhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for product listings.
type ProductHandler struct {
	productService *services.ProductService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app. All
// product mutation requires an authenticated vendor session.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, requireVendor fiber.Handler) {
	router.Post("/products", requireVendor, h.HandleCreateProduct)
	router.Patch("/products/:id", requireVendor, h.HandleUpdateProduct)
	router.Delete("/products/:id", requireVendor, h.HandleDeleteProduct)
}

// CreateProductRequest represents the request body for listing a product.
type CreateProductRequest struct {
	VendorID    string `json:"vendorId" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=255"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,max=500"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	PriceRange  string `json:"priceRange" validate:"omitempty,max=100"`
}

// HandleCreateProduct lists a new product under the session vendor.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing product create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	product := models.Product{
		VendorID:    req.VendorID,
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		PriceRange:  req.PriceRange,
	}

	if err := h.productService.CreateProduct(middleware.ActorID(c), &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update to a product owned by the
// session vendor.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var update models.ProductUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing product update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(update); err != nil {
		return validationError(c, err)
	}

	product, err := h.productService.UpdateProduct(middleware.ActorID(c), c.Params("id"), update)
	if err != nil {
		log.Printf("Error updating product %s: %v", c.Params("id"), err)
		return serviceError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product owned by the session vendor.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.productService.DeleteProduct(middleware.ActorID(c), c.Params("id")); err != nil {
		log.Printf("Error deleting product %s: %v", c.Params("id"), err)
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted",
	})
}
