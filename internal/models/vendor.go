package models

import "time"

// BusinessCategories is the fixed set of categories a vendor may register under.
var BusinessCategories = []string{
	"Contractor",
	"Material Supplier",
	"Consultant",
	"Fabricator",
	"Electrician",
	"Plumber",
	"Interior Designer",
	"Architect",
	"Other",
}

// Vendor represents a registered business with a public profile.
// AvgRating and TotalReviews are derived from the vendor's ratings and are
// only ever written by the rating repositories; they are never accepted from
// a client.
type Vendor struct {
	ID               string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	VendorName       string    `json:"vendorName" gorm:"type:varchar(255);not null"`
	OwnerName        string    `json:"ownerName" gorm:"type:varchar(255);not null"`
	ContactNumber    string    `json:"contactNumber" gorm:"type:varchar(20);not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	BusinessCategory string    `json:"businessCategory" gorm:"type:varchar(100);not null"`
	City             string    `json:"city" gorm:"type:varchar(100);not null"`
	Description      string    `json:"description" gorm:"type:text"`
	LogoURL          string    `json:"logoUrl" gorm:"type:varchar(500)"`
	PasswordHash     string    `json:"-" gorm:"type:varchar(255);not null"` // Never serialized
	AvgRating        float64   `json:"avgRating" gorm:"type:decimal(3,2);default:0"`
	TotalReviews     int       `json:"totalReviews" gorm:"default:0"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	Products []Product `json:"-" gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
	Ratings  []Rating  `json:"-" gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
}
