package handlers

import (
	"log"

	"vendorhub/internal/middleware"
	"vendorhub/internal/models"
	"vendorhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// VendorHandler handles HTTP requests for vendor profiles and their nested
// product/rating listings.
type VendorHandler struct {
	vendorService  *services.VendorService
	productService *services.ProductService
	ratingService  *services.RatingService
	validate       *validator.Validate
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vendorService *services.VendorService, productService *services.ProductService, ratingService *services.RatingService) *VendorHandler {
	return &VendorHandler{
		vendorService:  vendorService,
		productService: productService,
		ratingService:  ratingService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the vendor routes with the Fiber app. The
// requireVendor middleware gates the mutating route.
func (h *VendorHandler) RegisterRoutes(router fiber.Router, requireVendor fiber.Handler) {
	router.Get("/categories", h.HandleListCategories)
	router.Get("/vendors", h.HandleListVendors)
	router.Get("/vendors/:id", h.HandleGetVendor)
	router.Patch("/vendors/:id", requireVendor, h.HandleUpdateVendor)
	router.Get("/vendors/:id/products", h.HandleListVendorProducts)
	router.Get("/vendors/:id/ratings", h.HandleListVendorRatings)
}

// HandleListCategories returns the fixed set of business categories a
// vendor may register under.
func (h *VendorHandler) HandleListCategories(c *fiber.Ctx) error {
	return c.JSON(models.BusinessCategories)
}

// HandleListVendors returns all vendors, newest first.
func (h *VendorHandler) HandleListVendors(c *fiber.Ctx) error {
	vendors, err := h.vendorService.GetAllVendors()
	if err != nil {
		log.Printf("Error fetching vendors: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(vendors)
}

// HandleGetVendor returns a single vendor profile.
func (h *VendorHandler) HandleGetVendor(c *fiber.Ctx) error {
	vendor, err := h.vendorService.GetVendorByID(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(vendor)
}

// HandleUpdateVendor applies a partial update to the session vendor's own
// profile.
func (h *VendorHandler) HandleUpdateVendor(c *fiber.Ctx) error {
	var update models.VendorUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing vendor update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(update); err != nil {
		return validationError(c, err)
	}

	vendor, err := h.vendorService.UpdateVendor(middleware.ActorID(c), c.Params("id"), update)
	if err != nil {
		log.Printf("Error updating vendor %s: %v", c.Params("id"), err)
		return serviceError(c, err)
	}
	return c.JSON(vendor)
}

// HandleListVendorProducts returns a vendor's products, newest first.
func (h *VendorHandler) HandleListVendorProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetProductsByVendor(c.Params("id"))
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(products)
}

// HandleListVendorRatings returns a vendor's ratings, newest first.
func (h *VendorHandler) HandleListVendorRatings(c *fiber.Ctx) error {
	ratings, err := h.ratingService.GetRatingsByVendor(c.Params("id"))
	if err != nil {
		log.Printf("Error fetching ratings: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(ratings)
}
