package models

import "time"

// Rating is client-submitted feedback targeting a vendor. Ratings are
// immutable once created; there is no update path.
type Rating struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	VendorID    string    `json:"vendorId" gorm:"type:varchar(36);index;not null"`
	ClientName  string    `json:"clientName" gorm:"type:varchar(255);not null"`
	ProjectName string    `json:"projectName" gorm:"type:varchar(255);not null"`
	Rating      int       `json:"rating" gorm:"not null" validate:"required,min=1,max=5"`
	Comments    string    `json:"comments" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
}
