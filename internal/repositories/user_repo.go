package repositories

import (
	"time"

	"medwear/internal/models"
)

// UserRepository defines data access for users, password-reset tokens and
// addresses (the identity aggregate).
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	List(offset, limit int) ([]models.User, error)

	CreateResetToken(token *models.PasswordResetToken) error
	GetResetTokenByHash(hash string) (*models.PasswordResetToken, error)
	// RedeemResetToken marks the token used and sets the user's new password
	// hash in a single transaction; both writes persist or neither does.
	RedeemResetToken(tokenID, userID, newPasswordHash string, usedAt time.Time) error

	ListAddresses(userID string) ([]models.Address, error)
	GetAddress(id string) (*models.Address, error)
	CreateAddress(address *models.Address) error
	UpdateAddress(address *models.Address) error
	DeleteAddress(id string) error
	// SetDefaultAddress clears any previous default for the user and marks
	// the given address, atomically. Calling it twice is a no-op the second
	// time: exactly one default remains.
	SetDefaultAddress(userID, addressID string) error
}
