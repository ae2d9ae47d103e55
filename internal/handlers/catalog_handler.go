package handlers

import (
	"medwear/internal/models"
	"medwear/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for categories and brands.
type CatalogHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service, validate: validator.New()}
}

// RegisterRoutes registers the public browse routes.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleListCategories)
	router.Get("/categories/:slug", h.HandleGetCategoryBySlug)
	router.Get("/brands", h.HandleListBrands)
	router.Get("/brands/:slug", h.HandleGetBrandBySlug)
}

// RegisterAdminRoutes registers the category/brand management routes.
func (h *CatalogHandler) RegisterAdminRoutes(router fiber.Router) {
	categories := router.Group("/categories")
	categories.Post("/", h.HandleCreateCategory)
	categories.Put("/:id", h.HandleUpdateCategory)
	categories.Delete("/:id", h.HandleDeleteCategory)

	brands := router.Group("/brands")
	brands.Post("/", h.HandleCreateBrand)
	brands.Put("/:id", h.HandleUpdateBrand)
	brands.Delete("/:id", h.HandleDeleteBrand)
}

// HandleListCategories returns all categories.
func (h *CatalogHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// HandleGetCategoryBySlug returns one category by slug.
func (h *CatalogHandler) HandleGetCategoryBySlug(c *fiber.Ctx) error {
	category, err := h.service.GetCategoryBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a category.
func (h *CatalogHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return badBody(c, err)
	}
	category.ID = ""
	if err := h.validate.Struct(category); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.CreateCategory(&category); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory saves category changes.
func (h *CatalogHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return badBody(c, err)
	}
	category.ID = c.Params("id")
	if err := h.validate.Struct(category); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.UpdateCategory(&category); err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

// HandleDeleteCategory removes a category.
func (h *CatalogHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

// HandleListBrands returns brands; ?featured=true narrows to featured ones.
func (h *CatalogHandler) HandleListBrands(c *fiber.Ctx) error {
	brands, err := h.service.ListBrands(c.QueryBool("featured", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(brands)
}

// HandleGetBrandBySlug returns one brand by slug.
func (h *CatalogHandler) HandleGetBrandBySlug(c *fiber.Ctx) error {
	brand, err := h.service.GetBrandBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(brand)
}

// HandleCreateBrand creates a brand.
func (h *CatalogHandler) HandleCreateBrand(c *fiber.Ctx) error {
	var brand models.Brand
	if err := c.BodyParser(&brand); err != nil {
		return badBody(c, err)
	}
	brand.ID = ""
	if err := h.validate.Struct(brand); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.CreateBrand(&brand); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

// HandleUpdateBrand saves brand changes.
func (h *CatalogHandler) HandleUpdateBrand(c *fiber.Ctx) error {
	var brand models.Brand
	if err := c.BodyParser(&brand); err != nil {
		return badBody(c, err)
	}
	brand.ID = c.Params("id")
	if err := h.validate.Struct(brand); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.UpdateBrand(&brand); err != nil {
		return respondError(c, err)
	}
	return c.JSON(brand)
}

// HandleDeleteBrand removes a brand.
func (h *CatalogHandler) HandleDeleteBrand(c *fiber.Ctx) error {
	if err := h.service.DeleteBrand(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Brand deleted"})
}
