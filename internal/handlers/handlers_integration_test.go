package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"medwear/internal/database"
	"medwear/internal/handlers"
	"medwear/internal/middleware"
	"medwear/internal/models"
	"medwear/internal/repositories"
	"medwear/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type testEnv struct {
	app         *fiber.App
	authService *services.AuthService
}

// newTestEnv wires the full HTTP stack over a fresh in-memory database, the
// same way main does, minus the broker and static file serving.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.Open(database.Config{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	catalogRepo := repositories.NewGORMCatalogRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	couponRepo := repositories.NewGORMCouponRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	wishlistRepo := repositories.NewGORMWishlistRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	contentRepo := repositories.NewGORMContentRepository(db)

	authService := services.NewAuthService(userRepo, wishlistRepo, "test_jwt_secret")
	addressService := services.NewAddressService(userRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo, couponRepo)
	couponService := services.NewCouponService(couponRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, productRepo, couponRepo, cartService, nil)
	wishlistService := services.NewWishlistService(wishlistRepo)
	reviewService := services.NewReviewService(reviewRepo, orderRepo)
	contentService := services.NewContentService(contentRepo)

	authHandler := handlers.NewAuthHandler(authService, addressService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	productHandler := handlers.NewProductHandler(productService, reviewService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService, cartService, 5.00, 0.05)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	couponHandler := handlers.NewCouponHandler(couponService)
	contentHandler := handlers.NewContentHandler(contentService)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	apiV1.Use(middleware.OptionalAuth(authService))

	authHandler.RegisterRoutes(apiV1)
	catalogHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1)
	contentHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)

	account := apiV1.Group("/account", middleware.AuthRequired(authService))
	authHandler.RegisterAccountRoutes(account)
	orderHandler.RegisterAccountRoutes(account)
	wishlistHandler.RegisterAccountRoutes(account)
	reviewHandler.RegisterAccountRoutes(account)

	admin := apiV1.Group("/admin",
		middleware.AuthRequired(authService),
		middleware.RoleRequired(models.RoleAdmin, models.RoleSuperAdmin, models.RoleManager),
	)
	authHandler.RegisterAdminRoutes(admin)
	catalogHandler.RegisterAdminRoutes(admin)
	productHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)
	reviewHandler.RegisterAdminRoutes(admin)
	couponHandler.RegisterAdminRoutes(admin)
	contentHandler.RegisterAdminRoutes(admin)

	return &testEnv{app: app, authService: authService}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}, headers map[string]string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := e.app.Test(req, -1)
	assert.NoError(t, err)

	var parsed map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(raw) > 0 {
		// Some endpoints return arrays; those tests decode raw themselves.
		_ = json.Unmarshal(raw, &parsed)
	}
	return resp, parsed
}

// registerAndLogin creates an account, optionally elevates it, and returns a
// bearer token.
func (e *testEnv) registerAndLogin(t *testing.T, name, email, role string) string {
	t.Helper()
	user, err := e.authService.RegisterUser(name, email, "password123")
	assert.NoError(t, err)
	if role != models.RoleCustomer {
		assert.NoError(t, e.authService.SetRole(user.ID, role))
	}
	token, _, err := e.authService.LoginUser(email, "password123")
	assert.NoError(t, err)
	return token
}

func TestStorefrontFlow(t *testing.T) {
	env := newTestEnv(t)

	adminToken := env.registerAndLogin(t, "Admin User", "admin@example.com", models.RoleAdmin)
	customerToken := env.registerAndLogin(t, "Dana Reyes", "dana@example.com", models.RoleCustomer)

	// Admin surface is closed to customers and anonymous callers.
	resp, _ := env.request(t, http.MethodGet, "/api/v1/admin/orders", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, _ = env.request(t, http.MethodGet, "/api/v1/admin/orders", customerToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admin creates a product.
	resp, product := env.request(t, http.MethodPost, "/api/v1/admin/products", adminToken, map[string]interface{}{
		"name":               "Classic Scrub Top",
		"price":              25.00,
		"inventory_quantity": 10,
		"is_available":       true,
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "classic-scrub-top", product["slug"])
	productID := product["id"].(string)

	// The storefront sees it.
	resp, detail := env.request(t, http.MethodGet, "/api/v1/products/classic-scrub-top", "", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, detail["is_purchasable"])

	// A guest builds a cart against a session id.
	session := map[string]string{"X-Session-ID": "guest-session-1"}
	resp, _ = env.request(t, http.MethodPost, "/api/v1/cart/items", "", map[string]interface{}{
		"product_id": productID,
		"quantity":   2,
	}, session)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, cartBody := env.request(t, http.MethodGet, "/api/v1/cart", "", nil, session)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 50.00, cartBody["subtotal"])

	// Checkout: 50.00 subtotal + 5.00 flat shipping + 2.50 tax (5%).
	resp, order := env.request(t, http.MethodPost, "/api/v1/checkout", "", map[string]interface{}{
		"first_name":       "Dana",
		"last_name":        "Reyes",
		"email":            "dana@example.com",
		"shipping_line1":   "1 Hospital Way",
		"shipping_city":    "Springfield",
		"shipping_postal":  "12345",
		"shipping_country": "US",
	}, session)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 57.50, order["total"])
	assert.Equal(t, models.OrderPending, order["status"])
	orderID := order["id"].(string)

	// The cart is emptied by checkout.
	resp, cartBody = env.request(t, http.MethodGet, "/api/v1/cart", "", nil, session)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0.00, cartBody["subtotal"])

	// A successful payment confirms the order.
	resp, paid := env.request(t, http.MethodPost, "/api/v1/admin/orders/"+orderID+"/payments", adminToken, map[string]interface{}{
		"amount": 57.50,
		"status": "succeeded",
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, models.PaymentStatusPaid, paid["payment_status"])
	assert.Equal(t, models.OrderConfirmed, paid["status"])

	// Fulfillment walks the lifecycle; an illegal jump is rejected.
	resp, _ = env.request(t, http.MethodPatch, "/api/v1/admin/orders/"+orderID+"/status", adminToken, map[string]interface{}{
		"status": "delivered",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	for _, status := range []string{"processing", "shipped", "delivered"} {
		resp, _ = env.request(t, http.MethodPatch, "/api/v1/admin/orders/"+orderID+"/status", adminToken, map[string]interface{}{
			"status": status,
		}, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	// Cancelling a delivered order is rejected.
	resp, _ = env.request(t, http.MethodPatch, "/api/v1/admin/orders/"+orderID+"/status", adminToken, map[string]interface{}{
		"status": "cancelled",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPasswordResetFlow(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "Dana Reyes", "dana@example.com", models.RoleCustomer)

	// The request endpoint answers identically for known and unknown emails.
	resp, known := env.request(t, http.MethodPost, "/api/v1/auth/password-reset/request", "", map[string]interface{}{
		"email": "dana@example.com",
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, unknown := env.request(t, http.MethodPost, "/api/v1/auth/password-reset/request", "", map[string]interface{}{
		"email": "nobody@example.com",
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, known["message"], unknown["message"])

	// The raw token travels out of band; grab one through the service.
	rawToken, err := env.authService.RequestPasswordReset("dana@example.com")
	assert.NoError(t, err)

	resp, _ = env.request(t, http.MethodPost, "/api/v1/auth/password-reset/confirm", "", map[string]interface{}{
		"token":        rawToken,
		"new_password": "newpassword456",
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The old password is dead, the new one works.
	_, _, err = env.authService.LoginUser("dana@example.com", "password123")
	assert.Error(t, err)
	_, _, err = env.authService.LoginUser("dana@example.com", "newpassword456")
	assert.NoError(t, err)

	// The token burns on first use.
	resp, _ = env.request(t, http.MethodPost, "/api/v1/auth/password-reset/confirm", "", map[string]interface{}{
		"token":        rawToken,
		"new_password": "thirdpassword",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReviewModerationFlow(t *testing.T) {
	env := newTestEnv(t)

	adminToken := env.registerAndLogin(t, "Admin User", "admin@example.com", models.RoleAdmin)
	customerToken := env.registerAndLogin(t, "Dana Reyes", "dana@example.com", models.RoleCustomer)

	resp, product := env.request(t, http.MethodPost, "/api/v1/admin/products", adminToken, map[string]interface{}{
		"name":               "Classic Scrub Top",
		"price":              25.00,
		"inventory_quantity": 10,
		"is_available":       true,
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	productID := product["id"].(string)

	// A customer submits a review; it starts unapproved and invisible.
	resp, review := env.request(t, http.MethodPost, "/api/v1/account/reviews", customerToken, map[string]interface{}{
		"product_id": productID,
		"rating":     5,
		"title":      "Holds up through every shift",
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, false, review["is_approved"])
	assert.Equal(t, false, review["is_verified_purchase"])
	reviewID := review["id"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/classic-scrub-top/reviews", nil)
	listResp, err := env.app.Test(req, -1)
	assert.NoError(t, err)
	var visible []map[string]interface{}
	assert.NoError(t, json.NewDecoder(listResp.Body).Decode(&visible))
	listResp.Body.Close()
	assert.Empty(t, visible)

	// Approval makes it customer-visible.
	resp, _ = env.request(t, http.MethodPatch, "/api/v1/admin/reviews/"+reviewID+"/approval", adminToken, map[string]interface{}{
		"approved": true,
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/products/classic-scrub-top/reviews", nil)
	listResp, err = env.app.Test(req, -1)
	assert.NoError(t, err)
	visible = nil
	assert.NoError(t, json.NewDecoder(listResp.Body).Decode(&visible))
	listResp.Body.Close()
	assert.Len(t, visible, 1)
}
