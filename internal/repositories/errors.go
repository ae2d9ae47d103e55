package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sentinel errors shared by every repository. Services and handlers branch on
// these with errors.Is instead of matching message strings.
var (
	// ErrNotFound means the referenced row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique constraint (email, slug, sku, coupon code)
	// was violated.
	ErrDuplicate = errors.New("duplicate record")
)

// translate maps GORM errors onto the repository sentinels, keeping the
// operation name for context. Requires gorm.Config{TranslateError: true} so
// driver duplicate-key errors arrive as gorm.ErrDuplicatedKey.
func translate(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
