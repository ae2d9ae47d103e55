package handlers

import (
	"medwear/internal/models"
	"medwear/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ContentHandler handles collections and the blog.
type ContentHandler struct {
	service  *services.ContentService
	validate *validator.Validate
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(service *services.ContentService) *ContentHandler {
	return &ContentHandler{service: service, validate: validator.New()}
}

// RegisterRoutes registers the public storefront routes. Only published
// content is visible here.
func (h *ContentHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/collections", h.HandleListCollections)
	router.Get("/collections/:slug", h.HandleGetCollection)
	router.Get("/blog", h.HandleListBlogPosts)
	router.Get("/blog/:slug", h.HandleGetBlogPost)
	router.Get("/blog-categories", h.HandleListBlogCategories)
}

// RegisterAdminRoutes registers the content management routes.
func (h *ContentHandler) RegisterAdminRoutes(router fiber.Router) {
	collections := router.Group("/collections")
	collections.Get("/", h.HandleAdminListCollections)
	collections.Post("/", h.HandleCreateCollection)
	collections.Get("/:id", h.HandleAdminGetCollection)
	collections.Put("/:id", h.HandleUpdateCollection)
	collections.Delete("/:id", h.HandleDeleteCollection)
	collections.Post("/:id/products", h.HandleAddCollectionProduct)
	collections.Delete("/:id/products/:productId", h.HandleRemoveCollectionProduct)

	blog := router.Group("/blog")
	blog.Get("/", h.HandleAdminListBlogPosts)
	blog.Post("/", h.HandleCreateBlogPost)
	blog.Get("/:id", h.HandleAdminGetBlogPost)
	blog.Put("/:id", h.HandleUpdateBlogPost)
	blog.Delete("/:id", h.HandleDeleteBlogPost)
	blog.Put("/:id/categories", h.HandleTagBlogPost)

	categories := router.Group("/blog-categories")
	categories.Post("/", h.HandleCreateBlogCategory)
	categories.Delete("/:id", h.HandleDeleteBlogCategory)
}

// HandleListCollections returns published collections.
func (h *ContentHandler) HandleListCollections(c *fiber.Ctx) error {
	collections, err := h.service.ListCollections(true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(collections)
}

// HandleGetCollection returns one published collection with its products.
func (h *ContentHandler) HandleGetCollection(c *fiber.Ctx) error {
	collection, err := h.service.GetPublishedCollection(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(collection)
}

// HandleListBlogPosts returns live posts, newest first.
func (h *ContentHandler) HandleListBlogPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListBlogPosts(true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// HandleGetBlogPost returns one live post. Drafts and scheduled posts 404.
func (h *ContentHandler) HandleGetBlogPost(c *fiber.Ctx) error {
	post, err := h.service.GetVisibleBlogPost(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// HandleListBlogCategories returns all blog tags.
func (h *ContentHandler) HandleListBlogCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListBlogCategories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// HandleAdminListCollections returns every collection, drafts included.
func (h *ContentHandler) HandleAdminListCollections(c *fiber.Ctx) error {
	collections, err := h.service.ListCollections(false)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(collections)
}

// HandleCreateCollection creates a collection.
func (h *ContentHandler) HandleCreateCollection(c *fiber.Ctx) error {
	var collection models.Collection
	if err := c.BodyParser(&collection); err != nil {
		return badBody(c, err)
	}
	collection.ID = ""
	if err := h.validate.Struct(collection); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.CreateCollection(&collection); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(collection)
}

// HandleAdminGetCollection returns one collection by id.
func (h *ContentHandler) HandleAdminGetCollection(c *fiber.Ctx) error {
	collection, err := h.service.GetCollection(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(collection)
}

// HandleUpdateCollection saves collection changes.
func (h *ContentHandler) HandleUpdateCollection(c *fiber.Ctx) error {
	var collection models.Collection
	if err := c.BodyParser(&collection); err != nil {
		return badBody(c, err)
	}
	collection.ID = c.Params("id")
	if err := h.validate.Struct(collection); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.UpdateCollection(&collection); err != nil {
		return respondError(c, err)
	}
	return c.JSON(collection)
}

// HandleDeleteCollection removes a collection.
func (h *ContentHandler) HandleDeleteCollection(c *fiber.Ctx) error {
	if err := h.service.DeleteCollection(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Collection deleted"})
}

// HandleAddCollectionProduct links a product into a collection.
func (h *ContentHandler) HandleAddCollectionProduct(c *fiber.Ctx) error {
	var req struct {
		ProductID string `json:"product_id" validate:"required"`
		SortOrder int    `json:"sort_order"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.AddProductToCollection(c.Params("id"), req.ProductID, req.SortOrder); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product added to collection"})
}

// HandleRemoveCollectionProduct unlinks a product from a collection.
func (h *ContentHandler) HandleRemoveCollectionProduct(c *fiber.Ctx) error {
	if err := h.service.RemoveProductFromCollection(c.Params("id"), c.Params("productId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product removed from collection"})
}

// HandleAdminListBlogPosts returns every post, drafts included.
func (h *ContentHandler) HandleAdminListBlogPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListBlogPosts(false)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// HandleCreateBlogPost creates a post.
func (h *ContentHandler) HandleCreateBlogPost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return badBody(c, err)
	}
	post.ID = ""
	if err := h.validate.Struct(post); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.CreateBlogPost(&post); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleAdminGetBlogPost returns one post by id.
func (h *ContentHandler) HandleAdminGetBlogPost(c *fiber.Ctx) error {
	post, err := h.service.GetBlogPost(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// HandleUpdateBlogPost saves post changes.
func (h *ContentHandler) HandleUpdateBlogPost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return badBody(c, err)
	}
	post.ID = c.Params("id")
	if err := h.validate.Struct(post); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.UpdateBlogPost(&post); err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// HandleDeleteBlogPost removes a post.
func (h *ContentHandler) HandleDeleteBlogPost(c *fiber.Ctx) error {
	if err := h.service.DeleteBlogPost(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// HandleTagBlogPost replaces a post's category set.
func (h *ContentHandler) HandleTagBlogPost(c *fiber.Ctx) error {
	var req struct {
		CategoryIDs []string `json:"category_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.service.TagBlogPost(c.Params("id"), req.CategoryIDs); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post categories updated"})
}

// HandleCreateBlogCategory creates a blog tag.
func (h *ContentHandler) HandleCreateBlogCategory(c *fiber.Ctx) error {
	var category models.BlogCategory
	if err := c.BodyParser(&category); err != nil {
		return badBody(c, err)
	}
	category.ID = ""
	if err := h.validate.Struct(category); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.CreateBlogCategory(&category); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleDeleteBlogCategory removes a blog tag.
func (h *ContentHandler) HandleDeleteBlogCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteBlogCategory(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}
