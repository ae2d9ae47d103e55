package handlers

import (
	"medwear/internal/models"
	"medwear/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles review submission and moderation.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service, validate: validator.New()}
}

// RegisterAccountRoutes registers the logged-in submission route.
func (h *ReviewHandler) RegisterAccountRoutes(router fiber.Router) {
	router.Post("/reviews", h.HandleSubmit)
}

// RegisterAdminRoutes registers the moderation routes. Admin listings see
// unapproved rows too.
func (h *ReviewHandler) RegisterAdminRoutes(router fiber.Router) {
	reviews := router.Group("/reviews")
	reviews.Get("/", h.HandleListAll)
	reviews.Get("/product/:productId", h.HandleListForModeration)
	reviews.Patch("/:id/approval", h.HandleSetApproval)
	reviews.Delete("/:id", h.HandleDelete)
}

// SubmitReviewRequest is the customer payload. Approval and verified-purchase
// flags are deliberately absent; the service decides both.
type SubmitReviewRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Title     string `json:"title" validate:"max=255"`
	Body      string `json:"body" validate:"max=5000"`
}

// HandleSubmit stores a new review, pending moderation.
func (h *ReviewHandler) HandleSubmit(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	var req SubmitReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	review := &models.Review{
		UserID:    userID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Title:     req.Title,
		Body:      req.Body,
	}
	if err := h.service.Submit(review); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleListAll returns a page of all reviews.
func (h *ReviewHandler) HandleListAll(c *fiber.Ctx) error {
	reviews, err := h.service.ListAll(c.QueryInt("offset", 0), c.QueryInt("limit", 50))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

// HandleListForModeration returns every review for a product, approved or
// not.
func (h *ReviewHandler) HandleListForModeration(c *fiber.Ctx) error {
	reviews, err := h.service.ListForModeration(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

// HandleSetApproval moderates a review.
func (h *ReviewHandler) HandleSetApproval(c *fiber.Ctx) error {
	var req struct {
		Approved bool `json:"approved"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	review, err := h.service.SetApproval(c.Params("id"), req.Approved)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review)
}

// HandleDelete removes a review.
func (h *ReviewHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Review deleted"})
}
