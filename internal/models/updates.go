package models

// VendorUpdate carries the client-settable subset of vendor fields for a
// partial update. Credential and derived rating fields have no counterpart
// here, so they can never arrive through the update path.
type VendorUpdate struct {
	VendorName       *string `json:"vendorName" validate:"omitempty,min=1,max=255"`
	OwnerName        *string `json:"ownerName" validate:"omitempty,min=1,max=255"`
	ContactNumber    *string `json:"contactNumber" validate:"omitempty,min=5,max=20"`
	Email            *string `json:"email" validate:"omitempty,email"`
	BusinessCategory *string `json:"businessCategory" validate:"omitempty,oneof=Contractor 'Material Supplier' Consultant Fabricator Electrician Plumber 'Interior Designer' Architect Other"`
	City             *string `json:"city" validate:"omitempty,min=1,max=100"`
	Description      *string `json:"description" validate:"omitempty,max=2000"`
	LogoURL          *string `json:"logoUrl" validate:"omitempty,max=500"`
}

// ProductUpdate carries the client-settable subset of product fields for a
// partial update. The owning vendor cannot be reassigned.
type ProductUpdate struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,max=500"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	PriceRange  *string `json:"priceRange" validate:"omitempty,max=100"`
}
