package models

import "time"

// Category groups products. ParentID allows one level of nesting in practice
// (category -> subcategory), though nothing stops deeper trees. Slug is the
// stable identifier used in storefront routes.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(255)" validate:"required,min=2,max=255"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image_url" gorm:"type:varchar(512)"`
	ParentID    *string   `json:"parent_id" gorm:"index;type:varchar(36)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Brand is flat tagging metadata for products.
type Brand struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(255)" validate:"required,min=2,max=255"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
	Description string    `json:"description" gorm:"type:text"`
	LogoURL     string    `json:"logo_url" gorm:"type:varchar(512)"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
