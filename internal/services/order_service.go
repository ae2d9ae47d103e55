package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"medwear/internal/models"
	"medwear/internal/repositories"
)

// ErrInvalidTransition is returned for illegal order status moves, e.g.
// cancelling a shipped order.
var ErrInvalidTransition = errors.New("invalid order status transition")

// ErrEmptyCart is returned when checkout is attempted on a cart with no
// items.
var ErrEmptyCart = errors.New("cart is empty")

// EventPublisher is satisfied by the RabbitMQ client; nil disables events.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// CheckoutInput carries the contact and cost data captured at checkout. The
// contact fields are denormalized onto the order so later profile edits never
// rewrite history.
type CheckoutInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	ShippingLine1   string
	ShippingCity    string
	ShippingPostal  string
	ShippingCountry string
	ShippingCost    float64
	Tax             float64
}

// OrderService converts carts to orders and drives the fulfillment and
// payment lifecycles.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	couponRepo  repositories.CouponRepository
	cartService *CartService
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	cartRepo repositories.CartRepository,
	productRepo repositories.ProductRepository,
	couponRepo repositories.CouponRepository,
	cartService *CartService,
	publisher EventPublisher,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		couponRepo:  couponRepo,
		cartService: cartService,
		publisher:   publisher,
	}
}

// Checkout converts a cart into a durable order. Every cart line is
// snapshotted (name, sku, price at this moment), stock is decremented with a
// conditional guard, and the applied coupon's usage is counted, all inside
// one repository transaction. On success the cart is emptied.
func (s *OrderService) Checkout(cartID string, userID *string, input CheckoutInput) (*models.Order, error) {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var (
		subtotal   float64
		items      []models.OrderItem
		decrements []repositories.InventoryDecrement
	)
	for _, line := range cart.Items {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("cart line %s: %w", line.ID, err)
		}
		name := product.Name
		sku := product.SKU
		price := product.Price
		decrement := repositories.InventoryDecrement{
			ProductID:     product.ID,
			Quantity:      line.Quantity,
			AllowNegative: product.AllowOutOfStockPurchases,
		}
		if line.VariantID != nil {
			variant, err := s.productRepo.GetVariantByID(*line.VariantID)
			if err != nil {
				return nil, fmt.Errorf("cart line %s: %w", line.ID, err)
			}
			if !variant.IsPurchasable(product) {
				return nil, fmt.Errorf("variant %s: %w", variant.SKU, repositories.ErrInsufficientInventory)
			}
			sku = variant.SKU
			price = variant.EffectivePrice(product)
			if variant.InventoryQuantity != nil {
				// The variant tracks its own stock; decrement it instead of
				// the parent.
				decrement.VariantID = &variant.ID
			}
		} else if !product.IsPurchasable() {
			return nil, fmt.Errorf("product %s: %w", product.SKU, repositories.ErrInsufficientInventory)
		}

		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Name:      name,
			SKU:       sku,
			Price:     price,
			Quantity:  line.Quantity,
		})
		subtotal += price * float64(line.Quantity)
		decrements = append(decrements, decrement)
	}

	var (
		discount float64
		couponID *string
	)
	if cart.AppliedCouponID != nil {
		coupon, err := s.couponRepo.GetByID(*cart.AppliedCouponID)
		if err != nil {
			return nil, err
		}
		// Re-validate at checkout time; the coupon may have expired or run
		// out since it was applied to the cart.
		if reason := coupon.FailureReason(subtotal, time.Now()); reason != "" {
			return nil, &CouponNotApplicableError{Code: coupon.Code, Reason: reason}
		}
		discount = coupon.Discount(subtotal)
		couponID = &coupon.ID
	}

	order := &models.Order{
		UserID:          userID,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Phone:           input.Phone,
		ShippingLine1:   input.ShippingLine1,
		ShippingCity:    input.ShippingCity,
		ShippingPostal:  input.ShippingPostal,
		ShippingCountry: input.ShippingCountry,
		Subtotal:        subtotal,
		ShippingCost:    input.ShippingCost,
		Tax:             input.Tax,
		DiscountAmount:  discount,
		CouponID:        couponID,
		Total:           subtotal + input.ShippingCost + input.Tax - discount,
		Status:          models.OrderPending,
		PaymentStatus:   models.PaymentStatusPending,
		Items:           items,
	}
	if err := s.orderRepo.PlaceOrder(order, decrements); err != nil {
		return nil, err
	}

	if err := s.cartRepo.ClearItems(cart.ID); err != nil {
		log.Printf("Warning: failed to clear cart %s after checkout: %v", cart.ID, err)
	}
	cart.AppliedCouponID = nil
	cart.DiscountAmount = 0
	cart.UpdatedAt = time.Now()
	if err := s.cartRepo.Update(cart); err != nil {
		log.Printf("Warning: failed to reset cart %s after checkout: %v", cart.ID, err)
	}

	s.publish("order.created", map[string]interface{}{
		"order_id": order.ID,
		"total":    order.Total,
		"status":   order.Status,
	})
	return order, nil
}

// GetOrder retrieves an order with items and payments.
func (s *OrderService) GetOrder(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// ListOrdersByUser returns a customer's order history.
func (s *OrderService) ListOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}

// ListOrders returns orders for the admin console.
func (s *OrderService) ListOrders(filter repositories.OrderFilter) ([]models.Order, error) {
	return s.orderRepo.List(filter)
}

// RecordPayment stores one gateway transaction attempt and folds its outcome
// into the order: success confirms the order and marks it paid, failure
// leaves it pending so the customer can retry, a refund row flips the payment
// status to refunded.
func (s *OrderService) RecordPayment(orderID string, payment *models.Payment) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	payment.OrderID = order.ID
	if err := s.orderRepo.AddPayment(payment); err != nil {
		return nil, err
	}

	now := time.Now()
	switch payment.Status {
	case models.PaymentSucceeded:
		order.PaymentStatus = models.PaymentStatusPaid
		if order.Status == models.OrderPending {
			order.Status = models.OrderConfirmed
		}
	case models.PaymentRefunded:
		order.PaymentStatus = models.PaymentStatusRefunded
	case models.PaymentFailed:
		// Order stays pending; the customer may retry with a new attempt.
	}
	order.UpdatedAt = now
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.publish("order.payment", map[string]interface{}{
		"order_id":       order.ID,
		"payment_status": order.PaymentStatus,
		"amount":         payment.Amount,
	})
	return order, nil
}

// UpdateOrderStatus advances the fulfillment lifecycle. Milestone timestamps
// are stamped exactly once, on the transition that reaches them. Coupon usage
// is never rolled back on cancellation.
func (s *OrderService) UpdateOrderStatus(id, status string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !models.ValidOrderTransition(order.Status, status) {
		return nil, fmt.Errorf("cannot move order from %s to %s: %w", order.Status, status, ErrInvalidTransition)
	}

	now := time.Now()
	switch status {
	case models.OrderShipped:
		order.ShippedAt = &now
	case models.OrderDelivered:
		order.DeliveredAt = &now
	case models.OrderCancelled:
		order.CancelledAt = &now
	}
	order.Status = status
	order.UpdatedAt = now
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.publish("order.status_changed", map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
	})
	return order, nil
}

// Stats returns the admin dashboard aggregates.
func (s *OrderService) Stats() (*repositories.DashboardStats, error) {
	return s.orderRepo.Stats()
}

func (s *OrderService) publish(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish("order", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
