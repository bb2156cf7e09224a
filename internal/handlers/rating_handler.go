package handlers

import (
	"log"

	"vendorhub/internal/models"
	"vendorhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RatingHandler handles HTTP requests for client feedback. Rating
// submission is public; there is no authentication on this surface.
type RatingHandler struct {
	ratingService *services.RatingService
	validate      *validator.Validate
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(ratingService *services.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the rating routes with the Fiber app.
func (h *RatingHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/ratings", h.HandleCreateRating)
}

// CreateRatingRequest represents the request body for submitting feedback.
type CreateRatingRequest struct {
	VendorID    string `json:"vendorId" validate:"required"`
	ClientName  string `json:"clientName" validate:"required,min=1,max=255"`
	ProjectName string `json:"projectName" validate:"required,min=1,max=255"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comments    string `json:"comments" validate:"omitempty,max=2000"`
}

// HandleCreateRating stores feedback for an existing vendor and returns the
// created rating; the vendor's aggregate fields are refreshed as part of
// the same operation.
func (h *RatingHandler) HandleCreateRating(c *fiber.Ctx) error {
	var req CreateRatingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing rating create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	rating := models.Rating{
		VendorID:    req.VendorID,
		ClientName:  req.ClientName,
		ProjectName: req.ProjectName,
		Rating:      req.Rating,
		Comments:    req.Comments,
	}

	if err := h.ratingService.CreateRating(&rating); err != nil {
		log.Printf("Error creating rating: %v", err)
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(rating)
}
