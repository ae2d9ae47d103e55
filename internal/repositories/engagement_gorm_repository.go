package repositories

import (
	"medwear/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{db: db}
}

// Create creates a new wishlist.
func (r *GORMWishlistRepository) Create(wishlist *models.Wishlist) error {
	if wishlist.ID == "" {
		wishlist.ID = uuid.New().String()
	}
	if err := r.db.Create(wishlist).Error; err != nil {
		return translate("create wishlist", err)
	}
	return nil
}

// GetByID retrieves a wishlist with its items.
func (r *GORMWishlistRepository) GetByID(id string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := r.db.Preload("Items").First(&wishlist, "id = ?", id).Error; err != nil {
		return nil, translate("get wishlist by id", err)
	}
	return &wishlist, nil
}

// ListByUser returns all of a user's wishlists with items.
func (r *GORMWishlistRepository) ListByUser(userID string) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	if err := r.db.Preload("Items").Where("user_id = ?", userID).
		Order("created_at ASC").Find(&wishlists).Error; err != nil {
		return nil, translate("list wishlists", err)
	}
	return wishlists, nil
}

// Update saves wishlist-level fields (name, visibility).
func (r *GORMWishlistRepository) Update(wishlist *models.Wishlist) error {
	res := r.db.Omit("Items").Save(wishlist)
	if res.Error != nil {
		return translate("update wishlist", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update wishlist", gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes a wishlist and its items.
func (r *GORMWishlistRepository) Delete(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Wishlist{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&models.WishlistItem{}, "wishlist_id = ?", id).Error
	})
	if err != nil {
		return translate("delete wishlist", err)
	}
	return nil
}

// AddItem adds a product reference to a wishlist.
func (r *GORMWishlistRepository) AddItem(item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return translate("add wishlist item", err)
	}
	return nil
}

// RemoveItem deletes one wishlist item.
func (r *GORMWishlistRepository) RemoveItem(id string) error {
	res := r.db.Delete(&models.WishlistItem{}, "id = ?", id)
	if res.Error != nil {
		return translate("remove wishlist item", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("remove wishlist item", gorm.ErrRecordNotFound)
	}
	return nil
}

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{db: db}
}

// Create creates a new review.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return translate("create review", err)
	}
	return nil
}

// GetByID retrieves a review by id.
func (r *GORMReviewRepository) GetByID(id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		return nil, translate("get review by id", err)
	}
	return &review, nil
}

// ListByProduct returns a product's reviews, newest first.
func (r *GORMReviewRepository) ListByProduct(productID string, approvedOnly bool) ([]models.Review, error) {
	q := r.db.Where("product_id = ?", productID).Order("created_at DESC")
	if approvedOnly {
		q = q.Where("is_approved = ?", true)
	}
	var reviews []models.Review
	if err := q.Find(&reviews).Error; err != nil {
		return nil, translate("list reviews by product", err)
	}
	return reviews, nil
}

// ListAll returns a page of all reviews for moderation, newest first.
func (r *GORMReviewRepository) ListAll(offset, limit int) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, translate("list reviews", err)
	}
	return reviews, nil
}

// Update saves all review fields.
func (r *GORMReviewRepository) Update(review *models.Review) error {
	res := r.db.Save(review)
	if res.Error != nil {
		return translate("update review", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update review", gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes a review.
func (r *GORMReviewRepository) Delete(id string) error {
	res := r.db.Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return translate("delete review", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete review", gorm.ErrRecordNotFound)
	}
	return nil
}
