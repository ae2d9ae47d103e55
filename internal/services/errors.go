package services

import (
	"errors"
	"fmt"
)

// Password-reset token failures, distinguished so the UI can tell the user
// whether to request a fresh link.
var (
	ErrTokenInvalid     = errors.New("reset token is invalid")
	ErrTokenExpired     = errors.New("reset token has expired")
	ErrTokenAlreadyUsed = errors.New("reset token has already been used")
)

// ErrCouponNotApplicable is the base error for every coupon rejection; use
// errors.Is against it and inspect CouponNotApplicableError for the reason.
var ErrCouponNotApplicable = errors.New("coupon not applicable")

// CouponNotApplicableError reports which validity predicate the coupon
// failed (inactive, not_started, expired, usage_exhausted, below_minimum).
type CouponNotApplicableError struct {
	Code   string
	Reason string
}

func (e *CouponNotApplicableError) Error() string {
	return fmt.Sprintf("coupon %q not applicable: %s", e.Code, e.Reason)
}

func (e *CouponNotApplicableError) Unwrap() error { return ErrCouponNotApplicable }
