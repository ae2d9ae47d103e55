package models

import "time"

// Cart is a provisional basket. Exactly one of UserID (registered customer)
// or SessionID (guest) identifies the owner. Carts survive emptying; only the
// items are removed.
type Cart struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          *string   `json:"user_id" gorm:"index;type:varchar(36)"`
	SessionID       *string   `json:"session_id" gorm:"index;type:varchar(64)"`
	AppliedCouponID *string   `json:"applied_coupon_id" gorm:"type:varchar(36)"`
	DiscountAmount  float64   `json:"discount_amount"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Items []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID"`
}

// CartItem references live catalog rows; prices are resolved at checkout,
// never stored here.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID    string    `json:"cart_id" gorm:"index;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36)" validate:"required"`
	VariantID *string   `json:"variant_id" gorm:"type:varchar(36)"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
