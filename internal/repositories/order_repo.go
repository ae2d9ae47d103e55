package repositories

import (
	"errors"

	"medwear/internal/models"
)

// ErrInsufficientInventory is returned by PlaceOrder when a conditional stock
// decrement finds less inventory than the order needs. Checked at checkout
// time on purpose: stock can change between add-to-cart and checkout.
var ErrInsufficientInventory = errors.New("insufficient inventory")

// ErrCouponExhausted is returned by PlaceOrder when the applied coupon's
// usage limit was reached between cart-apply and checkout.
var ErrCouponExhausted = errors.New("coupon usage limit reached")

// InventoryDecrement is one stock adjustment performed inside the PlaceOrder
// transaction. VariantID is set when the variant tracks its own inventory.
// AllowNegative skips the stock guard for products that permit out-of-stock
// purchases.
type InventoryDecrement struct {
	ProductID     string
	VariantID     *string
	Quantity      int
	AllowNegative bool
}

// DashboardStats is the admin analytics aggregate.
type DashboardStats struct {
	OrderCount      int64   `json:"order_count"`
	PendingOrders   int64   `json:"pending_orders"`
	PaidRevenue     float64 `json:"paid_revenue"`
	CustomerCount   int64   `json:"customer_count"`
	LowStockCount   int64   `json:"low_stock_count"`
	PendingReviews  int64   `json:"pending_reviews"`
}

// OrderFilter narrows admin order listings.
type OrderFilter struct {
	Status string
	Offset int
	Limit  int
}

// OrderRepository defines data access for orders, order items and payments.
type OrderRepository interface {
	// PlaceOrder durably creates the order with its item snapshots, applies
	// every inventory decrement with a conditional guard, and increments the
	// applied coupon's used count, all in one transaction. Returns
	// ErrInsufficientInventory if any guarded decrement finds too little
	// stock.
	PlaceOrder(order *models.Order, decrements []InventoryDecrement) error
	GetByID(id string) (*models.Order, error)
	ListByUser(userID string) ([]models.Order, error)
	List(filter OrderFilter) ([]models.Order, error)
	Update(order *models.Order) error

	AddPayment(payment *models.Payment) error

	// HasDeliveredProduct reports whether the user has a delivered order
	// containing the product. Drives Review.IsVerifiedPurchase.
	HasDeliveredProduct(userID, productID string) (bool, error)
	Stats() (*DashboardStats, error)
}
