package repositories

import "medwear/internal/models"

// CartRepository defines data access for carts and their items. A cart is
// looked up by its owner key: user id for registered customers, session id
// for guests.
type CartRepository interface {
	Create(cart *models.Cart) error
	GetByID(id string) (*models.Cart, error)
	GetByUser(userID string) (*models.Cart, error)
	GetBySession(sessionID string) (*models.Cart, error)
	Update(cart *models.Cart) error

	AddItem(item *models.CartItem) error
	GetItem(id string) (*models.CartItem, error)
	UpdateItem(item *models.CartItem) error
	RemoveItem(id string) error
	// ClearItems empties the cart after checkout. The cart row itself stays.
	ClearItems(cartID string) error
}
