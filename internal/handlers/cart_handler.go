package handlers

import (
	"medwear/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for carts. Routes run behind
// OptionalAuth: a logged-in user's cart is keyed by their account, a guest's
// by the X-Session-ID header.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{service: service, validate: validator.New()}
}

// RegisterRoutes registers the cart routes.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cart := router.Group("/cart")
	cart.Get("/", h.HandleGetCart)
	cart.Post("/items", h.HandleAddItem)
	cart.Patch("/items/:id", h.HandleUpdateItem)
	cart.Delete("/items/:id", h.HandleRemoveItem)
	cart.Post("/coupon", h.HandleApplyCoupon)
	cart.Delete("/coupon", h.HandleRemoveCoupon)
}

// owner extracts the cart owner key from the request: user id when logged
// in, session id otherwise.
func owner(c *fiber.Ctx) (userID, sessionID string) {
	userID, _ = c.Locals("user_id").(string)
	if userID == "" {
		sessionID = c.Get("X-Session-ID")
	}
	return userID, sessionID
}

// HandleGetCart returns the caller's cart with its current subtotal,
// creating an empty cart on first touch.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID, sessionID := owner(c)
	if userID == "" && sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Log in or supply an X-Session-ID header",
		})
	}
	cart, err := h.service.GetOrCreate(userID, sessionID)
	if err != nil {
		return respondError(c, err)
	}
	subtotal, err := h.service.Subtotal(cart)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"cart":     cart,
		"subtotal": subtotal,
	})
}

// AddItemRequest is the payload for adding a cart line.
type AddItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	VariantID *string `json:"variant_id"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
}

// HandleAddItem puts a product in the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	userID, sessionID := owner(c)
	if userID == "" && sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Log in or supply an X-Session-ID header",
		})
	}
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	cart, err := h.service.GetOrCreate(userID, sessionID)
	if err != nil {
		return respondError(c, err)
	}
	item, err := h.service.AddItem(cart.ID, req.ProductID, req.VariantID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateItem sets a line's quantity; zero removes it.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req struct {
		Quantity int `json:"quantity" validate:"gte=0"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.UpdateItemQuantity(c.Params("id"), req.Quantity); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Cart updated"})
}

// HandleRemoveItem deletes a line.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if err := h.service.RemoveItem(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item removed"})
}

// HandleApplyCoupon validates and applies a coupon code to the cart.
func (h *CartHandler) HandleApplyCoupon(c *fiber.Ctx) error {
	userID, sessionID := owner(c)
	var req struct {
		Code string `json:"code" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	cart, err := h.service.GetOrCreate(userID, sessionID)
	if err != nil {
		return respondError(c, err)
	}
	cart, err = h.service.ApplyCoupon(cart.ID, req.Code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cart)
}

// HandleRemoveCoupon clears an applied coupon.
func (h *CartHandler) HandleRemoveCoupon(c *fiber.Ctx) error {
	userID, sessionID := owner(c)
	cart, err := h.service.GetOrCreate(userID, sessionID)
	if err != nil {
		return respondError(c, err)
	}
	cart, err = h.service.RemoveCoupon(cart.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cart)
}
