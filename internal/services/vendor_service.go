package services

import (
	"vendorhub/internal/models"
	"vendorhub/internal/repositories"
)

// VendorService handles business logic for vendor profiles.
type VendorService struct {
	vendorRepo repositories.VendorRepository
}

// NewVendorService creates a new VendorService.
func NewVendorService(vendorRepo repositories.VendorRepository) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
	}
}

// GetAllVendors retrieves all vendors, newest first.
func (s *VendorService) GetAllVendors() ([]models.Vendor, error) {
	return s.vendorRepo.GetAll()
}

// GetVendorByID retrieves a single vendor by its ID.
func (s *VendorService) GetVendorByID(id string) (*models.Vendor, error) {
	return s.vendorRepo.GetByID(id)
}

// UpdateVendor merges the provided fields into the vendor identified by id.
// Only the vendor itself (as identified by the session) may update its
// profile. Derived rating fields and the credential hash are not part of
// VendorUpdate and therefore can never be overwritten here.
func (s *VendorService) UpdateVendor(actorID, id string, update models.VendorUpdate) (*models.Vendor, error) {
	if err := authorize(actorID, id); err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.VendorName != nil {
		vendor.VendorName = *update.VendorName
	}
	if update.OwnerName != nil {
		vendor.OwnerName = *update.OwnerName
	}
	if update.ContactNumber != nil {
		vendor.ContactNumber = *update.ContactNumber
	}
	if update.Email != nil {
		vendor.Email = *update.Email
	}
	if update.BusinessCategory != nil {
		vendor.BusinessCategory = *update.BusinessCategory
	}
	if update.City != nil {
		vendor.City = *update.City
	}
	if update.Description != nil {
		vendor.Description = *update.Description
	}
	if update.LogoURL != nil {
		vendor.LogoURL = *update.LogoURL
	}

	if err := s.vendorRepo.Update(vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// DeleteVendor removes a vendor and, through the store's referential
// constraints, all of its products and ratings. Only the vendor itself may
// delete its profile.
func (s *VendorService) DeleteVendor(actorID, id string) error {
	if err := authorize(actorID, id); err != nil {
		return err
	}
	return s.vendorRepo.Delete(id)
}
