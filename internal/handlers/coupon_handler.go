package handlers

import (
	"medwear/internal/models"
	"medwear/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CouponHandler is the admin surface for discount codes.
type CouponHandler struct {
	service  *services.CouponService
	validate *validator.Validate
}

// NewCouponHandler creates a new CouponHandler.
func NewCouponHandler(service *services.CouponService) *CouponHandler {
	return &CouponHandler{service: service, validate: validator.New()}
}

// RegisterAdminRoutes registers the coupon management routes.
func (h *CouponHandler) RegisterAdminRoutes(router fiber.Router) {
	coupons := router.Group("/coupons")
	coupons.Get("/", h.HandleList)
	coupons.Post("/", h.HandleCreate)
	coupons.Get("/:id", h.HandleGet)
	coupons.Put("/:id", h.HandleUpdate)
	coupons.Delete("/:id", h.HandleDelete)
}

// HandleList returns all coupons.
func (h *CouponHandler) HandleList(c *fiber.Ctx) error {
	coupons, err := h.service.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(coupons)
}

// HandleCreate stores a new coupon.
func (h *CouponHandler) HandleCreate(c *fiber.Ctx) error {
	var coupon models.Coupon
	if err := c.BodyParser(&coupon); err != nil {
		return badBody(c, err)
	}
	coupon.ID = ""
	coupon.UsedCount = 0
	if err := h.validate.Struct(coupon); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.Create(&coupon); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(coupon)
}

// HandleGet returns one coupon by id.
func (h *CouponHandler) HandleGet(c *fiber.Ctx) error {
	coupon, err := h.service.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(coupon)
}

// HandleUpdate saves coupon changes. The stored redemption count survives the
// edit.
func (h *CouponHandler) HandleUpdate(c *fiber.Ctx) error {
	var coupon models.Coupon
	if err := c.BodyParser(&coupon); err != nil {
		return badBody(c, err)
	}
	coupon.ID = c.Params("id")
	if err := h.validate.Struct(coupon); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.Update(&coupon); err != nil {
		return respondError(c, err)
	}
	return c.JSON(coupon)
}

// HandleDelete removes a coupon.
func (h *CouponHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Coupon deleted"})
}
