package repositories

import "medwear/internal/models"

// CouponRepository defines data access for discount codes. UsedCount is
// mutated only through OrderRepository.PlaceOrder, never here.
type CouponRepository interface {
	Create(coupon *models.Coupon) error
	GetByID(id string) (*models.Coupon, error)
	GetByCode(code string) (*models.Coupon, error)
	List() ([]models.Coupon, error)
	Update(coupon *models.Coupon) error
	Delete(id string) error
}
