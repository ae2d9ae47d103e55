package repositories

import (
	"medwear/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

// Create creates a new cart.
func (r *GORMCartRepository) Create(cart *models.Cart) error {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	if err := r.db.Create(cart).Error; err != nil {
		return translate("create cart", err)
	}
	return nil
}

// GetByID retrieves a cart with its items.
func (r *GORMCartRepository) GetByID(id string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Items").First(&cart, "id = ?", id).Error; err != nil {
		return nil, translate("get cart by id", err)
	}
	return &cart, nil
}

// GetByUser retrieves the cart owned by a registered user.
func (r *GORMCartRepository) GetByUser(userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Items").First(&cart, "user_id = ?", userID).Error; err != nil {
		return nil, translate("get cart by user", err)
	}
	return &cart, nil
}

// GetBySession retrieves a guest cart by session id.
func (r *GORMCartRepository) GetBySession(sessionID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Items").First(&cart, "session_id = ?", sessionID).Error; err != nil {
		return nil, translate("get cart by session", err)
	}
	return &cart, nil
}

// Update saves cart-level fields (coupon, discount).
func (r *GORMCartRepository) Update(cart *models.Cart) error {
	res := r.db.Omit("Items").Save(cart)
	if res.Error != nil {
		return translate("update cart", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update cart", gorm.ErrRecordNotFound)
	}
	return nil
}

// AddItem adds a line to a cart.
func (r *GORMCartRepository) AddItem(item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return translate("add cart item", err)
	}
	return nil
}

// GetItem retrieves one cart item.
func (r *GORMCartRepository) GetItem(id string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, translate("get cart item", err)
	}
	return &item, nil
}

// UpdateItem saves all item fields.
func (r *GORMCartRepository) UpdateItem(item *models.CartItem) error {
	res := r.db.Save(item)
	if res.Error != nil {
		return translate("update cart item", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update cart item", gorm.ErrRecordNotFound)
	}
	return nil
}

// RemoveItem deletes one cart item. Removing the last item leaves an empty
// cart, not a deleted one.
func (r *GORMCartRepository) RemoveItem(id string) error {
	res := r.db.Delete(&models.CartItem{}, "id = ?", id)
	if res.Error != nil {
		return translate("remove cart item", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("remove cart item", gorm.ErrRecordNotFound)
	}
	return nil
}

// ClearItems removes every item from a cart.
func (r *GORMCartRepository) ClearItems(cartID string) error {
	if err := r.db.Delete(&models.CartItem{}, "cart_id = ?", cartID).Error; err != nil {
		return translate("clear cart items", err)
	}
	return nil
}
