package models

import "time"

// Coupon discount types.
const (
	CouponPercentage  = "percentage"
	CouponFixedAmount = "fixed_amount"
)

// Reasons a coupon fails its validity predicate, reported back to the user.
const (
	CouponReasonInactive       = "inactive"
	CouponReasonNotStarted     = "not_started"
	CouponReasonExpired        = "expired"
	CouponReasonUsageExhausted = "usage_exhausted"
	CouponReasonBelowMinimum   = "below_minimum"
)

// Coupon is a discount code. UsedCount is incremented once per placed order,
// never at cart-apply time and never decremented on cancellation.
type Coupon struct {
	ID            string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Code          string     `json:"code" gorm:"uniqueIndex;type:varchar(64)" validate:"required,min=3,max=64"`
	Type          string     `json:"type" gorm:"type:varchar(20)" validate:"required,oneof=percentage fixed_amount"`
	Value         float64    `json:"value" validate:"required,gt=0"`
	MinimumAmount *float64   `json:"minimum_amount" validate:"omitempty,gte=0"`
	UsageLimit    *int       `json:"usage_limit" validate:"omitempty,gt=0"`
	UsedCount     int        `json:"used_count"`
	IsActive      bool       `json:"is_active"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// FailureReason returns the first validity predicate the coupon fails for the
// given subtotal at the given time, or "" if the coupon is applicable.
func (c *Coupon) FailureReason(subtotal float64, now time.Time) string {
	if !c.IsActive {
		return CouponReasonInactive
	}
	if now.Before(c.StartDate) {
		return CouponReasonNotStarted
	}
	if c.EndDate != nil && now.After(*c.EndDate) {
		return CouponReasonExpired
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return CouponReasonUsageExhausted
	}
	if c.MinimumAmount != nil && subtotal < *c.MinimumAmount {
		return CouponReasonBelowMinimum
	}
	return ""
}

// Discount computes the discount amount for a subtotal. Fixed-amount coupons
// are capped at the subtotal so totals never go negative.
func (c *Coupon) Discount(subtotal float64) float64 {
	var d float64
	switch c.Type {
	case CouponPercentage:
		d = subtotal * c.Value / 100
	case CouponFixedAmount:
		d = c.Value
	}
	if d > subtotal {
		d = subtotal
	}
	return d
}
