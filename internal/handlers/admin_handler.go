package handlers

import (
	"fmt"
	"path/filepath"
	"strings"

	"medwear/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminHandler covers the dashboard and media uploads.
type AdminHandler struct {
	orderService *services.OrderService
	uploadDir    string
}

// NewAdminHandler creates a new AdminHandler. uploadDir must exist and be
// writable.
func NewAdminHandler(orderService *services.OrderService, uploadDir string) *AdminHandler {
	return &AdminHandler{orderService: orderService, uploadDir: uploadDir}
}

// RegisterAdminRoutes registers the dashboard and upload routes.
func (h *AdminHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleDashboard)
	router.Post("/uploads", h.HandleUpload)
}

// HandleDashboard returns the storefront health aggregates.
func (h *AdminHandler) HandleDashboard(c *fiber.Ctx) error {
	stats, err := h.orderService.Stats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

var allowedUploadExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// HandleUpload stores a multipart image under a random name and returns its
// public URL.
func (h *AdminHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing file field",
			"error":   err.Error(),
		})
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExts[ext] {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": fmt.Sprintf("Unsupported file type %q", ext),
		})
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to store file",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": "/uploads/" + name,
	})
}
