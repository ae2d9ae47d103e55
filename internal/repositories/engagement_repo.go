package repositories

import "medwear/internal/models"

// WishlistRepository defines data access for wishlists and their items.
type WishlistRepository interface {
	Create(wishlist *models.Wishlist) error
	GetByID(id string) (*models.Wishlist, error)
	ListByUser(userID string) ([]models.Wishlist, error)
	Update(wishlist *models.Wishlist) error
	Delete(id string) error

	AddItem(item *models.WishlistItem) error
	RemoveItem(id string) error
}

// ReviewRepository defines data access for product reviews.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id string) (*models.Review, error)
	// ListByProduct returns a product's reviews; approvedOnly is the
	// customer-facing path, admins pass false to see everything.
	ListByProduct(productID string, approvedOnly bool) ([]models.Review, error)
	ListAll(offset, limit int) ([]models.Review, error)
	Update(review *models.Review) error
	Delete(id string) error
}
