package handlers

import (
	"errors"
	"fmt"

	"medwear/internal/repositories"
	"medwear/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondError maps the service/repository error taxonomy onto HTTP statuses
// and a consistent JSON shape. Every error here is user-correctable or at
// least user-visible; only unknown errors become 500s.
func respondError(c *fiber.Ctx, err error) error {
	var couponErr *services.CouponNotApplicableError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Not found",
			"error":   err.Error(),
		})
	case errors.Is(err, repositories.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Duplicate value",
			"error":   err.Error(),
		})
	case errors.Is(err, repositories.ErrInsufficientInventory):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Insufficient inventory",
			"error":   err.Error(),
		})
	case errors.As(err, &couponErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Coupon not applicable",
			"reason":  couponErr.Reason,
			"error":   err.Error(),
		})
	case errors.Is(err, repositories.ErrCouponExhausted):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Coupon not applicable",
			"reason":  "usage_exhausted",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrTokenInvalid),
		errors.Is(err, services.ErrTokenExpired),
		errors.Is(err, services.ErrTokenAlreadyUsed):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Password reset failed",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Invalid status transition",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cart is empty",
			"error":   err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal error",
			"error":   err.Error(),
		})
	}
}

// respondValidation turns validator errors into a field->message map the UI
// can render next to each form field.
func respondValidation(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// badBody is the standard response for unparseable JSON.
func badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}
