package services

import (
	"time"

	"medwear/internal/models"
	"medwear/internal/repositories"
)

// CouponService is the admin surface for discount codes. Redemption counting
// lives in the order path, not here.
type CouponService struct {
	repo repositories.CouponRepository
}

// NewCouponService creates a new CouponService.
func NewCouponService(repo repositories.CouponRepository) *CouponService {
	return &CouponService{repo: repo}
}

// Create stores a new coupon. A zero StartDate means valid immediately.
func (s *CouponService) Create(coupon *models.Coupon) error {
	if coupon.StartDate.IsZero() {
		coupon.StartDate = time.Now()
	}
	return s.repo.Create(coupon)
}

// Get returns a coupon by id.
func (s *CouponService) Get(id string) (*models.Coupon, error) {
	return s.repo.GetByID(id)
}

// List returns all coupons.
func (s *CouponService) List() ([]models.Coupon, error) {
	return s.repo.List()
}

// Update saves coupon changes. UsedCount is preserved from the stored row so
// an admin edit can never reset redemption counting.
func (s *CouponService) Update(coupon *models.Coupon) error {
	current, err := s.repo.GetByID(coupon.ID)
	if err != nil {
		return err
	}
	coupon.UsedCount = current.UsedCount
	coupon.UpdatedAt = time.Now()
	return s.repo.Update(coupon)
}

// Delete removes a coupon.
func (s *CouponService) Delete(id string) error {
	return s.repo.Delete(id)
}
