package models_test

import (
	"testing"
	"time"

	"medwear/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCoupon_FailureReason(t *testing.T) {
	now := time.Now()
	minimum := 100.00
	limit := 5
	ended := now.Add(-time.Hour)

	base := models.Coupon{
		Code:      "SCRUBS10",
		Type:      models.CouponPercentage,
		Value:     10,
		IsActive:  true,
		StartDate: now.Add(-24 * time.Hour),
	}

	// Applicable coupon
	assert.Empty(t, base.FailureReason(50, now))

	// Inactive wins over every other predicate
	inactive := base
	inactive.IsActive = false
	inactive.EndDate = &ended
	assert.Equal(t, models.CouponReasonInactive, inactive.FailureReason(50, now))

	// Not started yet
	future := base
	future.StartDate = now.Add(time.Hour)
	assert.Equal(t, models.CouponReasonNotStarted, future.FailureReason(50, now))

	// Expired
	expired := base
	expired.EndDate = &ended
	assert.Equal(t, models.CouponReasonExpired, expired.FailureReason(50, now))

	// Usage exhausted
	exhausted := base
	exhausted.UsageLimit = &limit
	exhausted.UsedCount = 5
	assert.Equal(t, models.CouponReasonUsageExhausted, exhausted.FailureReason(50, now))

	// One redemption left is still applicable
	lastUse := base
	lastUse.UsageLimit = &limit
	lastUse.UsedCount = 4
	assert.Empty(t, lastUse.FailureReason(50, now))

	// Below minimum: 50 against a 100 floor fails, 100 exactly passes
	floored := base
	floored.MinimumAmount = &minimum
	assert.Equal(t, models.CouponReasonBelowMinimum, floored.FailureReason(50, now))
	assert.Empty(t, floored.FailureReason(100, now))
}

func TestCoupon_Discount(t *testing.T) {
	percentage := models.Coupon{Type: models.CouponPercentage, Value: 10}
	assert.Equal(t, 5.00, percentage.Discount(50))

	fixed := models.Coupon{Type: models.CouponFixedAmount, Value: 15}
	assert.Equal(t, 15.00, fixed.Discount(50))

	// A fixed discount larger than the subtotal is capped; totals never go
	// negative.
	big := models.Coupon{Type: models.CouponFixedAmount, Value: 80}
	assert.Equal(t, 50.00, big.Discount(50))
}

func TestValidOrderTransition(t *testing.T) {
	// The happy path
	assert.True(t, models.ValidOrderTransition(models.OrderPending, models.OrderConfirmed))
	assert.True(t, models.ValidOrderTransition(models.OrderConfirmed, models.OrderProcessing))
	assert.True(t, models.ValidOrderTransition(models.OrderProcessing, models.OrderShipped))
	assert.True(t, models.ValidOrderTransition(models.OrderShipped, models.OrderDelivered))

	// Cancellation is legal only before shipment
	assert.True(t, models.ValidOrderTransition(models.OrderPending, models.OrderCancelled))
	assert.True(t, models.ValidOrderTransition(models.OrderProcessing, models.OrderCancelled))
	assert.False(t, models.ValidOrderTransition(models.OrderShipped, models.OrderCancelled))
	assert.False(t, models.ValidOrderTransition(models.OrderDelivered, models.OrderCancelled))

	// No skipping or reversing
	assert.False(t, models.ValidOrderTransition(models.OrderPending, models.OrderShipped))
	assert.False(t, models.ValidOrderTransition(models.OrderDelivered, models.OrderPending))
	assert.False(t, models.ValidOrderTransition(models.OrderCancelled, models.OrderConfirmed))
}

func TestProduct_IsPurchasable(t *testing.T) {
	inStock := models.Product{IsAvailable: true, InventoryQuantity: 3}
	assert.True(t, inStock.IsPurchasable())

	hidden := models.Product{IsAvailable: false, InventoryQuantity: 3}
	assert.False(t, hidden.IsPurchasable())

	soldOut := models.Product{IsAvailable: true, InventoryQuantity: 0}
	assert.False(t, soldOut.IsPurchasable())

	backorder := models.Product{IsAvailable: true, InventoryQuantity: 0, AllowOutOfStockPurchases: true}
	assert.True(t, backorder.IsPurchasable())
}

func TestProductVariant_Overrides(t *testing.T) {
	parent := &models.Product{Price: 25.00, IsAvailable: true, InventoryQuantity: 10}

	// Nil overrides inherit everything from the parent.
	plain := models.ProductVariant{}
	assert.Equal(t, 25.00, plain.EffectivePrice(parent))
	assert.True(t, plain.IsPurchasable(parent))

	// Variant-tracked inventory takes precedence over the parent's stock.
	zero := 0
	tracked := models.ProductVariant{InventoryQuantity: &zero}
	assert.False(t, tracked.IsPurchasable(parent))

	// A variant can be switched off while the parent stays available.
	off := false
	disabled := models.ProductVariant{IsAvailable: &off}
	assert.False(t, disabled.IsPurchasable(parent))
}
