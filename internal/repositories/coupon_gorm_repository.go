package repositories

import (
	"medwear/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCouponRepository is a GORM implementation of CouponRepository.
type GORMCouponRepository struct {
	db *gorm.DB
}

// NewGORMCouponRepository creates a new instance of GORMCouponRepository.
func NewGORMCouponRepository(db *gorm.DB) *GORMCouponRepository {
	return &GORMCouponRepository{db: db}
}

// Create creates a new coupon.
func (r *GORMCouponRepository) Create(coupon *models.Coupon) error {
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	if err := r.db.Create(coupon).Error; err != nil {
		return translate("create coupon", err)
	}
	return nil
}

// GetByID retrieves a coupon by id.
func (r *GORMCouponRepository) GetByID(id string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, "id = ?", id).Error; err != nil {
		return nil, translate("get coupon by id", err)
	}
	return &coupon, nil
}

// GetByCode retrieves a coupon by its code.
func (r *GORMCouponRepository) GetByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, "code = ?", code).Error; err != nil {
		return nil, translate("get coupon by code", err)
	}
	return &coupon, nil
}

// List returns all coupons, newest first.
func (r *GORMCouponRepository) List() ([]models.Coupon, error) {
	var coupons []models.Coupon
	if err := r.db.Order("created_at DESC").Find(&coupons).Error; err != nil {
		return nil, translate("list coupons", err)
	}
	return coupons, nil
}

// Update saves all coupon fields.
func (r *GORMCouponRepository) Update(coupon *models.Coupon) error {
	res := r.db.Save(coupon)
	if res.Error != nil {
		return translate("update coupon", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update coupon", gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes a coupon.
func (r *GORMCouponRepository) Delete(id string) error {
	res := r.db.Delete(&models.Coupon{}, "id = ?", id)
	if res.Error != nil {
		return translate("delete coupon", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete coupon", gorm.ErrRecordNotFound)
	}
	return nil
}
