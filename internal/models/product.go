package models

import "time"

// Product represents an item or service listed by a vendor.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	VendorID    string    `json:"vendorId" gorm:"type:varchar(36);index;not null"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	ImageURL    string    `json:"imageUrl" gorm:"type:varchar(500)"`
	Description string    `json:"description" gorm:"type:text"`
	PriceRange  string    `json:"priceRange" gorm:"type:varchar(100)"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
