package models

import "time"

// Order fulfillment statuses.
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Order payment statuses.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// orderTransitions enumerates the legal fulfillment moves. Cancellation is an
// absorbing state reachable only before shipment; returns after delivery are
// modeled as refund Payment rows, not a status change.
var orderTransitions = map[string][]string{
	OrderPending:    {OrderConfirmed, OrderCancelled},
	OrderConfirmed:  {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

// ValidOrderTransition reports whether an order may move from one fulfillment
// status to another.
func ValidOrderTransition(from, to string) bool {
	for _, s := range orderTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Order is the immutable record of a completed checkout. Contact fields are
// denormalized at order time so later profile edits never rewrite history.
// Milestone timestamps are set exactly once, when the matching transition
// happens.
type Order struct {
	ID             string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID         *string    `json:"user_id" gorm:"index;type:varchar(36)"`
	FirstName      string     `json:"first_name" gorm:"type:varchar(100)" validate:"required"`
	LastName       string     `json:"last_name" gorm:"type:varchar(100)" validate:"required"`
	Email          string     `json:"email" gorm:"type:varchar(255)" validate:"required,email"`
	Phone          string     `json:"phone" gorm:"type:varchar(32)"`
	ShippingLine1  string     `json:"shipping_line1" gorm:"type:varchar(255)"`
	ShippingCity   string     `json:"shipping_city" gorm:"type:varchar(100)"`
	ShippingPostal string     `json:"shipping_postal" gorm:"type:varchar(20)"`
	ShippingCountry string    `json:"shipping_country" gorm:"type:varchar(100)"`
	Subtotal       float64    `json:"subtotal"`
	ShippingCost   float64    `json:"shipping_cost"`
	Tax            float64    `json:"tax"`
	DiscountAmount float64    `json:"discount_amount"`
	CouponID       *string    `json:"coupon_id" gorm:"type:varchar(36)"`
	Total          float64    `json:"total"`
	Status         string     `json:"status" gorm:"type:varchar(20);default:pending"`
	PaymentStatus  string     `json:"payment_status" gorm:"type:varchar(20);default:pending"`
	ShippedAt      *time.Time `json:"shipped_at"`
	DeliveredAt    *time.Time `json:"delivered_at"`
	CancelledAt    *time.Time `json:"cancelled_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Items    []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	Payments []Payment   `json:"payments,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem is a line-item snapshot. Name, SKU and Price are captured at
// order time on purpose: the historical order stays accurate even if the
// product is later renamed, repriced or deleted.
type OrderItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string    `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36)"`
	VariantID *string   `json:"variant_id" gorm:"type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255)"`
	SKU       string    `json:"sku" gorm:"type:varchar(64)"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Payment records one gateway transaction attempt. An order accrues multiple
// rows over its life: failed attempts, the successful charge, later refunds.
type Payment struct {
	ID               string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID          string    `json:"order_id" gorm:"index;type:varchar(36)"`
	PaymentIntentID  string    `json:"payment_intent_id" gorm:"type:varchar(255)"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency" gorm:"type:varchar(3);default:USD"`
	Status           string    `json:"status" gorm:"type:varchar(20)"`
	Method           string    `json:"method" gorm:"type:varchar(50)"`
	Gateway          string    `json:"gateway" gorm:"type:varchar(50)"`
	GatewayReference string    `json:"gateway_reference" gorm:"type:varchar(255)"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Payment attempt statuses.
const (
	PaymentPending   = "pending"
	PaymentSucceeded = "succeeded"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)
