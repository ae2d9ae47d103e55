package services

import (
	"errors"
	"fmt"
	"time"

	"medwear/internal/models"
	"medwear/internal/repositories"
)

// CartService manages provisional baskets for registered users and guests.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	couponRepo  repositories.CouponRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, couponRepo repositories.CouponRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		couponRepo:  couponRepo,
	}
}

// GetOrCreate returns the cart for the given owner, creating an empty one on
// first touch. Exactly one of userID/sessionID must be set.
func (s *CartService) GetOrCreate(userID, sessionID string) (*models.Cart, error) {
	var (
		cart *models.Cart
		err  error
	)
	switch {
	case userID != "":
		cart, err = s.cartRepo.GetByUser(userID)
	case sessionID != "":
		cart, err = s.cartRepo.GetBySession(sessionID)
	default:
		return nil, fmt.Errorf("cart owner is required")
	}
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	cart = &models.Cart{}
	if userID != "" {
		cart.UserID = &userID
	} else {
		cart.SessionID = &sessionID
	}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem puts a product (optionally a specific variant) in the cart, or
// bumps the quantity when the same line already exists. Purchasability is
// checked here for early feedback and again, authoritatively, at checkout.
func (s *CartService) AddItem(cartID, productID string, variantID *string, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if variantID != nil {
		variant, err := s.productRepo.GetVariantByID(*variantID)
		if err != nil {
			return nil, err
		}
		if !variant.IsPurchasable(product) {
			return nil, fmt.Errorf("variant %s is not purchasable: %w", variant.SKU, repositories.ErrInsufficientInventory)
		}
	} else if !product.IsPurchasable() {
		return nil, fmt.Errorf("product %s is not purchasable: %w", product.SKU, repositories.ErrInsufficientInventory)
	}

	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	for i := range cart.Items {
		item := &cart.Items[i]
		if item.ProductID == productID && equalVariant(item.VariantID, variantID) {
			item.Quantity += quantity
			item.UpdatedAt = time.Now()
			if err := s.cartRepo.UpdateItem(item); err != nil {
				return nil, err
			}
			return item, nil
		}
	}

	item := &models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		VariantID: variantID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.AddItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItemQuantity sets a line's quantity; zero removes the line.
func (s *CartService) UpdateItemQuantity(itemID string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	if quantity == 0 {
		return s.cartRepo.RemoveItem(itemID)
	}
	item, err := s.cartRepo.GetItem(itemID)
	if err != nil {
		return err
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	return s.cartRepo.UpdateItem(item)
}

// RemoveItem deletes a line. The cart itself persists even when emptied.
func (s *CartService) RemoveItem(itemID string) error {
	return s.cartRepo.RemoveItem(itemID)
}

// Subtotal resolves every line against the live catalog (variant price
// overrides included) and sums the line totals.
func (s *CartService) Subtotal(cart *models.Cart) (float64, error) {
	var subtotal float64
	for _, item := range cart.Items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return 0, fmt.Errorf("cart line %s: %w", item.ID, err)
		}
		price := product.Price
		if item.VariantID != nil {
			variant, err := s.productRepo.GetVariantByID(*item.VariantID)
			if err != nil {
				return 0, fmt.Errorf("cart line %s: %w", item.ID, err)
			}
			price = variant.EffectivePrice(product)
		}
		subtotal += price * float64(item.Quantity)
	}
	return subtotal, nil
}

// ApplyCoupon validates a code against the cart's current subtotal and, when
// it passes every predicate, stores the coupon reference and the computed
// discount on the cart. UsedCount is NOT touched here; usage is counted when
// an order is placed, so abandoned carts never burn a redemption.
func (s *CartService) ApplyCoupon(cartID, code string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	coupon, err := s.couponRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &CouponNotApplicableError{Code: code, Reason: "unknown code"}
		}
		return nil, err
	}
	subtotal, err := s.Subtotal(cart)
	if err != nil {
		return nil, err
	}
	if reason := coupon.FailureReason(subtotal, time.Now()); reason != "" {
		return nil, &CouponNotApplicableError{Code: code, Reason: reason}
	}

	cart.AppliedCouponID = &coupon.ID
	cart.DiscountAmount = coupon.Discount(subtotal)
	cart.UpdatedAt = time.Now()
	if err := s.cartRepo.Update(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveCoupon clears an applied coupon from the cart.
func (s *CartService) RemoveCoupon(cartID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	cart.AppliedCouponID = nil
	cart.DiscountAmount = 0
	cart.UpdatedAt = time.Now()
	if err := s.cartRepo.Update(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func equalVariant(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
