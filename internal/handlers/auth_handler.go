package handlers

import (
	"log"

	"vendorhub/internal/middleware"
	"vendorhub/internal/models"
	"vendorhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// AuthHandler handles HTTP requests for registration, login and logout.
type AuthHandler struct {
	authService *services.AuthService
	store       *session.Store
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, store *session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/vendors/register", h.HandleRegister)
	router.Post("/vendors/login", h.HandleLogin)
	router.Get("/logout", h.HandleLogout)
	router.Get("/auth/vendor", h.HandleCurrentVendor)
}

// RegisterRequest represents the request body for vendor registration.
type RegisterRequest struct {
	VendorName       string `json:"vendorName" validate:"required,min=1,max=255"`
	OwnerName        string `json:"ownerName" validate:"required,min=1,max=255"`
	ContactNumber    string `json:"contactNumber" validate:"required,min=5,max=20"`
	Email            string `json:"email" validate:"required,email"`
	BusinessCategory string `json:"businessCategory" validate:"required,oneof=Contractor 'Material Supplier' Consultant Fabricator Electrician Plumber 'Interior Designer' Architect Other"`
	City             string `json:"city" validate:"required,min=1,max=100"`
	Description      string `json:"description" validate:"omitempty,max=2000"`
	LogoURL          string `json:"logoUrl" validate:"omitempty,max=500"`
	Password         string `json:"password" validate:"required,min=6"`
	ConfirmPassword  string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// HandleRegister handles new vendor registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	vendor := models.Vendor{
		VendorName:       req.VendorName,
		OwnerName:        req.OwnerName,
		ContactNumber:    req.ContactNumber,
		Email:            req.Email,
		BusinessCategory: req.BusinessCategory,
		City:             req.City,
		Description:      req.Description,
		LogoURL:          req.LogoURL,
	}

	if err := h.authService.Register(&vendor, req.Password); err != nil {
		log.Printf("Error registering vendor: %v", err)
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(vendor)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin verifies credentials and binds the vendor ID to the session.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	vendor, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for %s: %v", req.Email, err)
		return serviceError(c, err)
	}

	sess, err := h.store.Get(c)
	if err != nil {
		log.Printf("Error getting session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Login failed",
		})
	}
	sess.Set(middleware.VendorIDKey, vendor.ID)
	if err := sess.Save(); err != nil {
		log.Printf("Error saving session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Login failed",
		})
	}

	return c.JSON(vendor)
}

// HandleLogout destroys the session server-side and redirects to the root.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		log.Printf("Logout error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Logout failed",
		})
	}
	if err := sess.Destroy(); err != nil {
		log.Printf("Logout error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Logout failed",
		})
	}
	return c.Redirect("/")
}

// HandleCurrentVendor returns the vendor bound to the current session, or
// 401 when there is no session or the vendor no longer exists.
func (h *AuthHandler) HandleCurrentVendor(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}
	vendorID, _ := sess.Get(middleware.VendorIDKey).(string)

	vendor, err := h.authService.CurrentVendor(vendorID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}
	return c.JSON(vendor)
}
