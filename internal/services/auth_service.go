package services

import (
	"fmt"

	"vendorhub/internal/apperr"
	"vendorhub/internal/models"
	"vendorhub/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles vendor registration and credential verification.
type AuthService struct {
	vendorRepo repositories.VendorRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(vendorRepo repositories.VendorRepository) *AuthService {
	return &AuthService{
		vendorRepo: vendorRepo,
	}
}

// Register hashes the password and saves the vendor. The email must not be
// registered already; a unique index on the column backs this check up
// against racing registrations.
func (s *AuthService) Register(vendor *models.Vendor, password string) error {
	if existing, err := s.vendorRepo.GetByEmail(vendor.Email); err == nil && existing != nil {
		return fmt.Errorf("email '%s' already registered: %w", vendor.Email, apperr.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	vendor.PasswordHash = string(hashedPassword)

	if err := s.vendorRepo.Create(vendor); err != nil {
		return fmt.Errorf("failed to register vendor: %w", err)
	}
	return nil
}

// Login verifies the email/password pair and returns the vendor on success.
// Unknown email and wrong password produce the same error, so callers cannot
// probe which emails are registered.
func (s *AuthService) Login(email, password string) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", apperr.ErrUnauthenticated)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(vendor.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", apperr.ErrUnauthenticated)
	}

	return vendor, nil
}

// CurrentVendor resolves a session's vendor ID to the vendor record. A
// stale session pointing at a deleted vendor yields ErrUnauthenticated.
func (s *AuthService) CurrentVendor(vendorID string) (*models.Vendor, error) {
	if vendorID == "" {
		return nil, apperr.ErrUnauthenticated
	}
	vendor, err := s.vendorRepo.GetByID(vendorID)
	if err != nil {
		return nil, fmt.Errorf("session vendor %s: %w", vendorID, apperr.ErrUnauthenticated)
	}
	return vendor, nil
}
