package models

import "time"

// Wishlist is a named set of saved products. A user may keep several;
// registration seeds one called "My Wishlist". IsPublic makes the list
// shareable by link.
type Wishlist struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255);default:My Wishlist"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []WishlistItem `json:"items,omitempty" gorm:"foreignKey:WishlistID"`
}

// WishlistItem references a product and optionally a specific variant.
type WishlistItem struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	WishlistID string    `json:"wishlist_id" gorm:"index;type:varchar(36)"`
	ProductID  string    `json:"product_id" gorm:"type:varchar(36)" validate:"required"`
	VariantID  *string   `json:"variant_id" gorm:"type:varchar(36)"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Review is customer feedback on a product. Reviews start unapproved and only
// become customer-visible after moderation. IsVerifiedPurchase is set by the
// service when the reviewer has a delivered order containing the product.
type Review struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID             string    `json:"user_id" gorm:"index;type:varchar(36)"`
	ProductID          string    `json:"product_id" gorm:"index;type:varchar(36)" validate:"required"`
	Rating             int       `json:"rating" validate:"required,min=1,max=5"`
	Title              string    `json:"title" gorm:"type:varchar(255)"`
	Body               string    `json:"body" gorm:"type:text"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase"`
	IsApproved         bool      `json:"is_approved"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
