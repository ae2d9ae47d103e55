package handlers

import (
	"log"
	"math"

	"medwear/internal/models"
	"medwear/internal/repositories"
	"medwear/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles checkout, the customer order history and the admin
// fulfillment routes.
type OrderHandler struct {
	orderService *services.OrderService
	cartService  *services.CartService
	shippingFlat float64
	taxRate      float64
	validate     *validator.Validate
}

// NewOrderHandler creates a new OrderHandler. shippingFlat is the flat
// shipping charge per order; taxRate is applied to the subtotal.
func NewOrderHandler(orderService *services.OrderService, cartService *services.CartService, shippingFlat, taxRate float64) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		cartService:  cartService,
		shippingFlat: shippingFlat,
		taxRate:      taxRate,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers checkout and order tracking. Runs behind
// OptionalAuth so guests can check out with a session cart.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCheckout)
	router.Get("/orders/:id", h.HandleGetOrder)
}

// RegisterAccountRoutes registers the logged-in order history route.
func (h *OrderHandler) RegisterAccountRoutes(router fiber.Router) {
	router.Get("/orders", h.HandleListMyOrders)
}

// RegisterAdminRoutes registers the fulfillment management routes.
func (h *OrderHandler) RegisterAdminRoutes(router fiber.Router) {
	orders := router.Group("/orders")
	orders.Get("/", h.HandleAdminListOrders)
	orders.Get("/:id", h.HandleGetOrder)
	orders.Patch("/:id/status", h.HandleUpdateOrderStatus)
	orders.Post("/:id/payments", h.HandleRecordPayment)
}

// CheckoutRequest is the contact payload captured at checkout.
type CheckoutRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	ShippingLine1   string `json:"shipping_line1" validate:"required"`
	ShippingCity    string `json:"shipping_city" validate:"required"`
	ShippingPostal  string `json:"shipping_postal" validate:"required"`
	ShippingCountry string `json:"shipping_country" validate:"required"`
}

// HandleCheckout converts the caller's cart into an order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	userID, sessionID := owner(c)
	if userID == "" && sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Log in or supply an X-Session-ID header",
		})
	}
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	cart, err := h.cartService.GetOrCreate(userID, sessionID)
	if err != nil {
		return respondError(c, err)
	}
	subtotal, err := h.cartService.Subtotal(cart)
	if err != nil {
		return respondError(c, err)
	}

	input := services.CheckoutInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		ShippingLine1:   req.ShippingLine1,
		ShippingCity:    req.ShippingCity,
		ShippingPostal:  req.ShippingPostal,
		ShippingCountry: req.ShippingCountry,
		ShippingCost:    h.shippingFlat,
		Tax:             math.Round(subtotal*h.taxRate*100) / 100,
	}
	var orderUser *string
	if userID != "" {
		orderUser = &userID
	}
	order, err := h.orderService.Checkout(cart.ID, orderUser, input)
	if err != nil {
		log.Printf("Checkout failed for cart %s: %v", cart.ID, err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrder returns one order for tracking. Customers may only read
// their own orders; staff may read any.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	order, err := h.orderService.GetOrder(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	role, _ := c.Locals("role").(string)
	userID, _ := c.Locals("user_id").(string)
	if role == models.RoleCustomer || role == "" {
		if order.UserID == nil || *order.UserID != userID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden",
			})
		}
	}
	return c.JSON(order)
}

// HandleListMyOrders returns the logged-in customer's order history.
func (h *OrderHandler) HandleListMyOrders(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	orders, err := h.orderService.ListOrdersByUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleAdminListOrders returns orders, filterable by status.
func (h *OrderHandler) HandleAdminListOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListOrders(repositories.OrderFilter{
		Status: c.Query("status"),
		Offset: c.QueryInt("offset", 0),
		Limit:  c.QueryInt("limit", 50),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleUpdateOrderStatus advances the fulfillment lifecycle.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}
	order, err := h.orderService.UpdateOrderStatus(c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// RecordPaymentRequest is the gateway result payload.
type RecordPaymentRequest struct {
	PaymentIntentID  string  `json:"payment_intent_id"`
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	Currency         string  `json:"currency"`
	Status           string  `json:"status" validate:"required,oneof=pending succeeded failed refunded"`
	Method           string  `json:"method"`
	Gateway          string  `json:"gateway"`
	GatewayReference string  `json:"gateway_reference"`
}

// HandleRecordPayment stores one gateway transaction attempt against an
// order and folds the outcome into its payment status.
func (h *OrderHandler) HandleRecordPayment(c *fiber.Ctx) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	payment := &models.Payment{
		PaymentIntentID:  req.PaymentIntentID,
		Amount:           req.Amount,
		Currency:         currency,
		Status:           req.Status,
		Method:           req.Method,
		Gateway:          req.Gateway,
		GatewayReference: req.GatewayReference,
	}
	order, err := h.orderService.RecordPayment(c.Params("id"), payment)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}
