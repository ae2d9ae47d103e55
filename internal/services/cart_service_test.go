package services_test

import (
	"testing"
	"time"

	"medwear/internal/models"
	"medwear/internal/repositories"
	"medwear/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository is a mock implementation of repositories.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(cart *models.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func (m *MockCartRepository) GetByID(id string) (*models.Cart, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) GetByUser(userID string) (*models.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) GetBySession(sessionID string) (*models.Cart, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) Update(cart *models.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func (m *MockCartRepository) AddItem(item *models.CartItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCartRepository) GetItem(id string) (*models.CartItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) UpdateItem(item *models.CartItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCartRepository) RemoveItem(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCartRepository) ClearItems(cartID string) error {
	args := m.Called(cartID)
	return args.Error(0)
}

// MockCouponRepository is a mock implementation of repositories.CouponRepository
type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) Create(coupon *models.Coupon) error {
	args := m.Called(coupon)
	return args.Error(0)
}

func (m *MockCouponRepository) GetByID(id string) (*models.Coupon, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Coupon), args.Error(1)
}

func (m *MockCouponRepository) GetByCode(code string) (*models.Coupon, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Coupon), args.Error(1)
}

func (m *MockCouponRepository) List() ([]models.Coupon, error) {
	args := m.Called()
	return args.Get(0).([]models.Coupon), args.Error(1)
}

func (m *MockCouponRepository) Update(coupon *models.Coupon) error {
	args := m.Called(coupon)
	return args.Error(0)
}

func (m *MockCouponRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func seedScrubTop(t *testing.T, repo repositories.ProductRepository) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:              "Classic Scrub Top",
		Slug:              "classic-scrub-top",
		SKU:               "CLA000001",
		Price:             25.00,
		InventoryQuantity: 10,
		IsAvailable:       true,
	}
	assert.NoError(t, repo.Create(product))
	return product
}

func TestCartService_AddItem(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockCoupons := new(MockCouponRepository)
	productRepo := repositories.NewMockProductRepository()
	service := services.NewCartService(mockCarts, productRepo, mockCoupons)

	product := seedScrubTop(t, productRepo)

	// Test adding a new line
	cart := &models.Cart{ID: "cart-1"}
	mockCarts.On("GetByID", "cart-1").Return(cart, nil).Once()
	mockCarts.On("AddItem", mock.AnythingOfType("*models.CartItem")).Return(nil).Once()

	item, err := service.AddItem("cart-1", product.ID, nil, 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	mockCarts.AssertExpectations(t)

	// Test adding the same product again merges into the existing line
	cartWithLine := &models.Cart{
		ID: "cart-1",
		Items: []models.CartItem{
			{ID: "item-1", CartID: "cart-1", ProductID: product.ID, Quantity: 2},
		},
	}
	mockCarts.On("GetByID", "cart-1").Return(cartWithLine, nil).Once()
	mockCarts.On("UpdateItem", mock.AnythingOfType("*models.CartItem")).Return(nil).Once()

	item, err = service.AddItem("cart-1", product.ID, nil, 3)
	assert.NoError(t, err)
	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, 5, item.Quantity)
	mockCarts.AssertExpectations(t)

	// Test out-of-stock product is rejected up front
	soldOut := &models.Product{
		Name:        "Sold Out Gown",
		Slug:        "sold-out-gown",
		SKU:         "SOL000001",
		Price:       40.00,
		IsAvailable: true,
	}
	assert.NoError(t, productRepo.Create(soldOut))

	_, err = service.AddItem("cart-1", soldOut.ID, nil, 1)
	assert.ErrorIs(t, err, repositories.ErrInsufficientInventory)

	// Test zero quantity is rejected
	_, err = service.AddItem("cart-1", product.ID, nil, 0)
	assert.Error(t, err)
}

func TestCartService_Subtotal(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockCoupons := new(MockCouponRepository)
	productRepo := repositories.NewMockProductRepository()
	service := services.NewCartService(mockCarts, productRepo, mockCoupons)

	product := seedScrubTop(t, productRepo)

	// Variant with a price override: the override wins over the parent price.
	override := 30.00
	variant := &models.ProductVariant{
		ProductID: product.ID,
		SKU:       "CLA000001-1",
		Price:     &override,
	}
	assert.NoError(t, productRepo.CreateVariant(variant))

	cart := &models.Cart{
		ID: "cart-1",
		Items: []models.CartItem{
			{ID: "item-1", ProductID: product.ID, Quantity: 2},
			{ID: "item-2", ProductID: product.ID, VariantID: &variant.ID, Quantity: 1},
		},
	}
	subtotal, err := service.Subtotal(cart)
	assert.NoError(t, err)
	assert.Equal(t, 80.00, subtotal) // 2 x 25.00 + 1 x 30.00
}

func TestCartService_ApplyCoupon(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockCoupons := new(MockCouponRepository)
	productRepo := repositories.NewMockProductRepository()
	service := services.NewCartService(mockCarts, productRepo, mockCoupons)

	product := seedScrubTop(t, productRepo)
	cart := &models.Cart{
		ID: "cart-1",
		Items: []models.CartItem{
			{ID: "item-1", ProductID: product.ID, Quantity: 2}, // subtotal 50.00
		},
	}

	// Test minimum-amount predicate: subtotal 50 against a 100 minimum.
	minimum := 100.00
	belowMin := &models.Coupon{
		ID:            "coupon-1",
		Code:          "BIGSPENDER",
		Type:          models.CouponPercentage,
		Value:         10,
		MinimumAmount: &minimum,
		IsActive:      true,
		StartDate:     time.Now().Add(-time.Hour),
	}
	mockCarts.On("GetByID", "cart-1").Return(cart, nil).Once()
	mockCoupons.On("GetByCode", "BIGSPENDER").Return(belowMin, nil).Once()

	_, err := service.ApplyCoupon("cart-1", "BIGSPENDER")
	var notApplicable *services.CouponNotApplicableError
	assert.ErrorAs(t, err, &notApplicable)
	assert.Equal(t, models.CouponReasonBelowMinimum, notApplicable.Reason)
	mockCarts.AssertExpectations(t)
	mockCoupons.AssertExpectations(t)

	// Test successful percentage application. UsedCount is untouched: no
	// coupon Update call is expected here.
	tenOff := &models.Coupon{
		ID:        "coupon-2",
		Code:      "SCRUBS10",
		Type:      models.CouponPercentage,
		Value:     10,
		IsActive:  true,
		StartDate: time.Now().Add(-time.Hour),
	}
	mockCarts.On("GetByID", "cart-1").Return(cart, nil).Once()
	mockCoupons.On("GetByCode", "SCRUBS10").Return(tenOff, nil).Once()
	mockCarts.On("Update", mock.AnythingOfType("*models.Cart")).Return(nil).Once()

	updated, err := service.ApplyCoupon("cart-1", "SCRUBS10")
	assert.NoError(t, err)
	assert.Equal(t, "coupon-2", *updated.AppliedCouponID)
	assert.Equal(t, 5.00, updated.DiscountAmount) // 10% of 50.00
	mockCarts.AssertExpectations(t)
	mockCoupons.AssertExpectations(t)

	// Test expired coupon
	ended := time.Now().Add(-time.Hour)
	expired := &models.Coupon{
		ID:        "coupon-3",
		Code:      "LASTYEAR",
		Type:      models.CouponFixedAmount,
		Value:     5,
		IsActive:  true,
		StartDate: time.Now().Add(-48 * time.Hour),
		EndDate:   &ended,
	}
	mockCarts.On("GetByID", "cart-1").Return(cart, nil).Once()
	mockCoupons.On("GetByCode", "LASTYEAR").Return(expired, nil).Once()

	_, err = service.ApplyCoupon("cart-1", "LASTYEAR")
	assert.ErrorAs(t, err, &notApplicable)
	assert.Equal(t, models.CouponReasonExpired, notApplicable.Reason)

	// Test unknown code
	mockCarts.On("GetByID", "cart-1").Return(cart, nil).Once()
	mockCoupons.On("GetByCode", "NOPE").Return(nil, repositories.ErrNotFound).Once()

	_, err = service.ApplyCoupon("cart-1", "NOPE")
	assert.ErrorAs(t, err, &notApplicable)
	assert.ErrorIs(t, err, services.ErrCouponNotApplicable)
}

func TestCartService_RemoveCoupon(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockCoupons := new(MockCouponRepository)
	productRepo := repositories.NewMockProductRepository()
	service := services.NewCartService(mockCarts, productRepo, mockCoupons)

	couponID := "coupon-2"
	cart := &models.Cart{ID: "cart-1", AppliedCouponID: &couponID, DiscountAmount: 5.00}
	mockCarts.On("GetByID", "cart-1").Return(cart, nil).Once()
	mockCarts.On("Update", mock.AnythingOfType("*models.Cart")).Return(nil).Once()

	updated, err := service.RemoveCoupon("cart-1")
	assert.NoError(t, err)
	assert.Nil(t, updated.AppliedCouponID)
	assert.Zero(t, updated.DiscountAmount)
	mockCarts.AssertExpectations(t)
}

func TestCartService_UpdateItemQuantity(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockCoupons := new(MockCouponRepository)
	productRepo := repositories.NewMockProductRepository()
	service := services.NewCartService(mockCarts, productRepo, mockCoupons)

	// Test zero quantity removes the line
	mockCarts.On("RemoveItem", "item-1").Return(nil).Once()
	assert.NoError(t, service.UpdateItemQuantity("item-1", 0))
	mockCarts.AssertExpectations(t)

	// Test positive quantity updates the line
	item := &models.CartItem{ID: "item-1", Quantity: 2}
	mockCarts.On("GetItem", "item-1").Return(item, nil).Once()
	mockCarts.On("UpdateItem", mock.AnythingOfType("*models.CartItem")).Return(nil).Once()
	assert.NoError(t, service.UpdateItemQuantity("item-1", 4))
	assert.Equal(t, 4, item.Quantity)
	mockCarts.AssertExpectations(t)

	// Test negative quantity rejected
	assert.Error(t, service.UpdateItemQuantity("item-1", -1))
}
