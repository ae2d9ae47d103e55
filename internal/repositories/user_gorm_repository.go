package repositories

import (
	"time"

	"medwear/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{db: db}
}

// Create creates a new user.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return translate("create user", err)
	}
	return nil
}

// GetByID retrieves a user by id.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate("get user by id", err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, translate("get user by email", err)
	}
	return &user, nil
}

// Update saves all user fields. Callers set UpdatedAt explicitly.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Save(user)
	if res.Error != nil {
		return translate("update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update user", gorm.ErrRecordNotFound)
	}
	return nil
}

// List returns a page of users ordered by creation time, newest first.
func (r *GORMUserRepository) List(offset, limit int) ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, translate("list users", err)
	}
	return users, nil
}

// CreateResetToken stores a password-reset token row (hash only).
func (r *GORMUserRepository) CreateResetToken(token *models.PasswordResetToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	if err := r.db.Create(token).Error; err != nil {
		return translate("create reset token", err)
	}
	return nil
}

// GetResetTokenByHash looks up a token by the hash of its raw value.
func (r *GORMUserRepository) GetResetTokenByHash(hash string) (*models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	if err := r.db.First(&token, "token_hash = ?", hash).Error; err != nil {
		return nil, translate("get reset token", err)
	}
	return &token, nil
}

// RedeemResetToken performs the one-shot redemption: stamp UsedAt on the
// token and replace the user's password hash inside one transaction.
func (r *GORMUserRepository) RedeemResetToken(tokenID, userID, newPasswordHash string, usedAt time.Time) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PasswordResetToken{}).
			Where("id = ? AND used_at IS NULL", tokenID).
			Updates(map[string]interface{}{"used_at": usedAt, "updated_at": usedAt})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		res = tx.Model(&models.User{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{"password_hash": newPasswordHash, "updated_at": usedAt})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return translate("redeem reset token", err)
	}
	return nil
}

// ListAddresses returns all addresses for a user, default first.
func (r *GORMUserRepository) ListAddresses(userID string) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.Where("user_id = ?", userID).Order("is_default DESC, created_at ASC").Find(&addresses).Error; err != nil {
		return nil, translate("list addresses", err)
	}
	return addresses, nil
}

// GetAddress retrieves one address by id.
func (r *GORMUserRepository) GetAddress(id string) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, "id = ?", id).Error; err != nil {
		return nil, translate("get address", err)
	}
	return &address, nil
}

// CreateAddress creates a new address.
func (r *GORMUserRepository) CreateAddress(address *models.Address) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	if err := r.db.Create(address).Error; err != nil {
		return translate("create address", err)
	}
	return nil
}

// UpdateAddress saves all address fields.
func (r *GORMUserRepository) UpdateAddress(address *models.Address) error {
	res := r.db.Save(address)
	if res.Error != nil {
		return translate("update address", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update address", gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteAddress removes an address.
func (r *GORMUserRepository) DeleteAddress(id string) error {
	res := r.db.Delete(&models.Address{}, "id = ?", id)
	if res.Error != nil {
		return translate("delete address", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete address", gorm.ErrRecordNotFound)
	}
	return nil
}

// SetDefaultAddress clears any prior default for the user, then marks the
// given address, in one transaction.
func (r *GORMUserRepository) SetDefaultAddress(userID, addressID string) error {
	now := time.Now()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).
			Where("user_id = ? AND is_default = ? AND id <> ?", userID, true, addressID).
			Updates(map[string]interface{}{"is_default": false, "updated_at": now}).Error; err != nil {
			return err
		}
		res := tx.Model(&models.Address{}).
			Where("id = ? AND user_id = ?", addressID, userID).
			Updates(map[string]interface{}{"is_default": true, "updated_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return translate("set default address", err)
	}
	return nil
}
