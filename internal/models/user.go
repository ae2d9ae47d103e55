package models

import "time"

// User roles. New registrations always start as RoleCustomer; elevated roles
// are assigned by an existing admin.
const (
	RoleCustomer   = "customer"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
	RoleManager    = "manager"
)

// User represents an account, customer or staff.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FullName     string    `json:"full_name" gorm:"type:varchar(255)" validate:"required,min=2,max=255"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"`
	Role         string    `json:"role" gorm:"type:varchar(20);default:customer"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PasswordResetToken stores only the SHA-256 hash of the token mailed to the
// user. A token is redeemable while UsedAt is nil and ExpiresAt is in the
// future; redemption sets UsedAt rather than deleting the row.
type PasswordResetToken struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string     `json:"user_id" gorm:"index;type:varchar(36)"`
	TokenHash string     `json:"-" gorm:"uniqueIndex;type:varchar(64)"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Redeemable reports whether the token can still be used at the given time.
func (t *PasswordResetToken) Redeemable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}

// Address is a shipping/billing address belonging to a user. At most one
// address per user may have IsDefault set; the repository clears the previous
// default when a new one is chosen.
type Address struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	FullName   string    `json:"full_name" gorm:"type:varchar(255)" validate:"required"`
	Phone      string    `json:"phone" gorm:"type:varchar(32)"`
	Line1      string    `json:"line1" gorm:"type:varchar(255)" validate:"required"`
	Line2      string    `json:"line2" gorm:"type:varchar(255)"`
	City       string    `json:"city" gorm:"type:varchar(100)" validate:"required"`
	State      string    `json:"state" gorm:"type:varchar(100)"`
	PostalCode string    `json:"postal_code" gorm:"type:varchar(20)" validate:"required"`
	Country    string    `json:"country" gorm:"type:varchar(100)" validate:"required"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
