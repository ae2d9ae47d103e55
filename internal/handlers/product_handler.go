package handlers

import (
	"medwear/internal/models"
	"medwear/internal/repositories"
	"medwear/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product aggregate and the
// customer-facing review list.
type ProductHandler struct {
	service       *services.ProductService
	reviewService *services.ReviewService
	validate      *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, reviewService *services.ReviewService) *ProductHandler {
	return &ProductHandler{
		service:       service,
		reviewService: reviewService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the public storefront routes. Customers browse
// only available products and see only approved reviews.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleListProducts)
	products.Get("/:slug", h.HandleGetProductBySlug)
	products.Get("/:slug/reviews", h.HandleListProductReviews)
}

// RegisterAdminRoutes registers the product management routes.
func (h *ProductHandler) RegisterAdminRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleAdminListProducts)
	products.Post("/", h.HandleCreateProduct)
	products.Get("/:id", h.HandleGetProduct)
	products.Put("/:id", h.HandleUpdateProduct)
	products.Delete("/:id", h.HandleDeleteProduct)
	products.Post("/:id/images", h.HandleAddImage)
	products.Delete("/:id/images/:imageId", h.HandleDeleteImage)
	products.Post("/:id/options", h.HandleAddOption)
	products.Delete("/:id/options/:optionId", h.HandleDeleteOption)
	products.Post("/:id/variants", h.HandleCreateVariant)
	products.Put("/:id/variants/:variantId", h.HandleUpdateVariant)
	products.Delete("/:id/variants/:variantId", h.HandleDeleteVariant)
}

// HandleListProducts returns available products, filterable by category and
// brand id.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		CategoryID:    c.Query("category_id"),
		BrandID:       c.Query("brand_id"),
		AvailableOnly: true,
		Offset:        c.QueryInt("offset", 0),
		Limit:         c.QueryInt("limit", 24),
	}
	products, err := h.service.ListProducts(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductBySlug returns the full aggregate for a product page,
// including a purchasability flag computed server-side.
func (h *ProductHandler) HandleGetProductBySlug(c *fiber.Ctx) error {
	product, err := h.service.GetProductBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"product":        product,
		"is_purchasable": product.IsPurchasable(),
	})
}

// HandleListProductReviews returns approved reviews for a product.
func (h *ProductHandler) HandleListProductReviews(c *fiber.Ctx) error {
	product, err := h.service.GetProductBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	reviews, err := h.reviewService.ListForProduct(product.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

// HandleAdminListProducts returns all products, drafts and unavailable ones
// included.
func (h *ProductHandler) HandleAdminListProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		CategoryID: c.Query("category_id"),
		BrandID:    c.Query("brand_id"),
		Offset:     c.QueryInt("offset", 0),
		Limit:      c.QueryInt("limit", 50),
	}
	products, err := h.service.ListProducts(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProduct returns one product by id for the admin console.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product. Slug and SKU default from the name
// when omitted.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return badBody(c, err)
	}
	product.ID = ""
	if err := h.validate.Struct(product); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.CreateProduct(&product); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct saves product changes.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return badBody(c, err)
	}
	product.ID = c.Params("id")
	if err := h.validate.Struct(product); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.UpdateProduct(&product); err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product and its dependent rows.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// HandleAddImage attaches an image to a product.
func (h *ProductHandler) HandleAddImage(c *fiber.Ctx) error {
	var image models.ProductImage
	if err := c.BodyParser(&image); err != nil {
		return badBody(c, err)
	}
	image.ID = ""
	image.ProductID = c.Params("id")
	if err := h.validate.Struct(image); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.AddImage(&image); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

// HandleDeleteImage removes an image.
func (h *ProductHandler) HandleDeleteImage(c *fiber.Ctx) error {
	if err := h.service.DeleteImage(c.Params("imageId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Image deleted"})
}

// HandleAddOption declares an option with its values.
func (h *ProductHandler) HandleAddOption(c *fiber.Ctx) error {
	var option models.ProductOption
	if err := c.BodyParser(&option); err != nil {
		return badBody(c, err)
	}
	option.ID = ""
	option.ProductID = c.Params("id")
	if err := h.validate.Struct(option); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.AddOption(&option); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(option)
}

// HandleDeleteOption removes an option and its values.
func (h *ProductHandler) HandleDeleteOption(c *fiber.Ctx) error {
	if err := h.service.DeleteOption(c.Params("optionId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Option deleted"})
}

// HandleCreateVariant creates a sellable variant.
func (h *ProductHandler) HandleCreateVariant(c *fiber.Ctx) error {
	var variant models.ProductVariant
	if err := c.BodyParser(&variant); err != nil {
		return badBody(c, err)
	}
	variant.ID = ""
	variant.ProductID = c.Params("id")
	if err := h.service.CreateVariant(&variant); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(variant)
}

// HandleUpdateVariant saves variant changes.
func (h *ProductHandler) HandleUpdateVariant(c *fiber.Ctx) error {
	var variant models.ProductVariant
	if err := c.BodyParser(&variant); err != nil {
		return badBody(c, err)
	}
	variant.ID = c.Params("variantId")
	variant.ProductID = c.Params("id")
	if err := h.service.UpdateVariant(&variant); err != nil {
		return respondError(c, err)
	}
	return c.JSON(variant)
}

// HandleDeleteVariant removes a variant.
func (h *ProductHandler) HandleDeleteVariant(c *fiber.Ctx) error {
	if err := h.service.DeleteVariant(c.Params("variantId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Variant deleted"})
}
