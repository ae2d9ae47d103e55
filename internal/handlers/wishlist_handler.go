package handlers

import (
	"medwear/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for wishlists.
type WishlistHandler struct {
	service  *services.WishlistService
	validate *validator.Validate
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service, validate: validator.New()}
}

// RegisterAccountRoutes registers the logged-in wishlist routes.
func (h *WishlistHandler) RegisterAccountRoutes(router fiber.Router) {
	wishlists := router.Group("/wishlists")
	wishlists.Get("/", h.HandleList)
	wishlists.Post("/", h.HandleCreate)
	wishlists.Get("/:id", h.HandleGet)
	wishlists.Put("/:id", h.HandleRename)
	wishlists.Delete("/:id", h.HandleDelete)
	wishlists.Post("/:id/items", h.HandleAddItem)
	wishlists.Delete("/:id/items/:itemId", h.HandleRemoveItem)
}

// HandleList returns the caller's wishlists.
func (h *WishlistHandler) HandleList(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	wishlists, err := h.service.ListForUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wishlists)
}

// WishlistRequest is the payload for creating or renaming a list.
type WishlistRequest struct {
	Name     string `json:"name" validate:"max=255"`
	IsPublic bool   `json:"is_public"`
}

// HandleCreate adds a named wishlist.
func (h *WishlistHandler) HandleCreate(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	var req WishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}
	wishlist, err := h.service.Create(userID, req.Name, req.IsPublic)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(wishlist)
}

// HandleGet returns one wishlist the caller owns (or any public one).
func (h *WishlistHandler) HandleGet(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	wishlist, err := h.service.Get(c.Params("id"), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wishlist)
}

// HandleRename changes a list's name and visibility.
func (h *WishlistHandler) HandleRename(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	var req WishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}
	wishlist, err := h.service.Rename(c.Params("id"), userID, req.Name, req.IsPublic)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wishlist)
}

// HandleDelete removes a wishlist.
func (h *WishlistHandler) HandleDelete(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if err := h.service.Delete(c.Params("id"), userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Wishlist deleted"})
}

// HandleAddItem saves a product into a wishlist.
func (h *WishlistHandler) HandleAddItem(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	var req struct {
		ProductID string  `json:"product_id" validate:"required"`
		VariantID *string `json:"variant_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}
	item, err := h.service.AddItem(c.Params("id"), userID, req.ProductID, req.VariantID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleRemoveItem drops one saved product.
func (h *WishlistHandler) HandleRemoveItem(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if err := h.service.RemoveItem(c.Params("id"), c.Params("itemId"), userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item removed"})
}
