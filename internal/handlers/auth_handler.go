package handlers

import (
	"log"

	"medwear/internal/models"
	"medwear/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication, account profile and
// the address book.
type AuthHandler struct {
	authService    *services.AuthService
	addressService *services.AddressService
	validate       *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, addressService *services.AddressService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		addressService: addressService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/password-reset/request", h.HandlePasswordResetRequest)
	authRoutes.Post("/password-reset/confirm", h.HandlePasswordResetConfirm)
}

// RegisterAccountRoutes registers routes that require a logged-in user. The
// router is expected to be mounted under /account behind AuthRequired.
func (h *AuthHandler) RegisterAccountRoutes(router fiber.Router) {
	router.Get("/profile", h.HandleGetProfile)
	router.Put("/profile", h.HandleUpdateProfile)
	router.Get("/addresses", h.HandleListAddresses)
	router.Post("/addresses", h.HandleCreateAddress)
	router.Put("/addresses/:id", h.HandleUpdateAddress)
	router.Delete("/addresses/:id", h.HandleDeleteAddress)
	router.Post("/addresses/:id/default", h.HandleSetDefaultAddress)
}

// RegisterAdminRoutes registers the customer-management routes.
func (h *AuthHandler) RegisterAdminRoutes(router fiber.Router) {
	customers := router.Group("/customers")
	customers.Get("/", h.HandleListCustomers)
	customers.Get("/:id", h.HandleGetCustomer)
	customers.Patch("/:id/role", h.HandleSetRole)
}

// RegisterRequest is the client payload for registration. Role and password
// hash are deliberately absent: a client cannot grant itself privileges.
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	user, err := h.authService.RegisterUser(req.FullName, req.Email, req.Password)
	if err != nil {
		log.Printf("Error registering user: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// LoginRequest is the client payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	token, user, err := h.authService.LoginUser(req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// HandlePasswordResetRequest starts the reset flow. The response is the same
// whether or not the email exists, so the endpoint cannot be used to probe
// for accounts. The raw token is handed to the mailer, never returned here.
func (h *AuthHandler) HandlePasswordResetRequest(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if _, err := h.authService.RequestPasswordReset(req.Email); err != nil {
		log.Printf("Password reset request for %s: %v", req.Email, err)
	}
	return c.JSON(fiber.Map{
		"message": "If that email is registered, a reset link has been sent",
	})
}

// HandlePasswordResetConfirm redeems a reset token.
func (h *AuthHandler) HandlePasswordResetConfirm(c *fiber.Ctx) error {
	var req struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}

// HandleGetProfile returns the logged-in user's profile.
func (h *AuthHandler) HandleGetProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	user, err := h.authService.GetUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleUpdateProfile changes name and email.
func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	var req struct {
		FullName string `json:"full_name" validate:"required,min=2,max=255"`
		Email    string `json:"email" validate:"required,email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	user, err := h.authService.UpdateProfile(userID, req.FullName, req.Email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleListAddresses returns the user's address book.
func (h *AuthHandler) HandleListAddresses(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	addresses, err := h.addressService.List(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(addresses)
}

// HandleCreateAddress saves a new address for the user.
func (h *AuthHandler) HandleCreateAddress(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		return badBody(c, err)
	}
	address.ID = ""
	address.UserID = userID
	if err := h.validate.Struct(address); err != nil {
		return respondValidation(c, err)
	}
	if err := h.addressService.Create(&address); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}

// HandleUpdateAddress saves changes to an existing address.
func (h *AuthHandler) HandleUpdateAddress(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		return badBody(c, err)
	}
	address.ID = c.Params("id")
	address.UserID = userID
	if err := h.validate.Struct(address); err != nil {
		return respondValidation(c, err)
	}
	if err := h.addressService.Update(userID, &address); err != nil {
		return respondError(c, err)
	}
	return c.JSON(address)
}

// HandleDeleteAddress removes an address.
func (h *AuthHandler) HandleDeleteAddress(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if err := h.addressService.Delete(userID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Address deleted"})
}

// HandleSetDefaultAddress marks one address as the default.
func (h *AuthHandler) HandleSetDefaultAddress(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if err := h.addressService.SetDefault(userID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Default address updated"})
}

// HandleListCustomers returns a page of accounts for the admin console.
func (h *AuthHandler) HandleListCustomers(c *fiber.Ctx) error {
	users, err := h.authService.ListCustomers(c.QueryInt("offset", 0), c.QueryInt("limit", 50))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleGetCustomer returns one account.
func (h *AuthHandler) HandleGetCustomer(c *fiber.Ctx) error {
	user, err := h.authService.GetUser(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleSetRole changes an account's role.
func (h *AuthHandler) HandleSetRole(c *fiber.Ctx) error {
	var req struct {
		Role string `json:"role" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.authService.SetRole(c.Params("id"), req.Role); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Role updated"})
}
