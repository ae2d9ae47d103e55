package repositories

import (
	"medwear/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// PlaceOrder writes the order, its item snapshots, the inventory decrements
// and the coupon usage increment in a single transaction. The decrement uses
// a conditional UPDATE ("inventory_quantity >= ?") so two concurrent
// checkouts cannot both succeed past a stale read.
func (r *GORMOrderRepository) PlaceOrder(order *models.Order, decrements []InventoryDecrement) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, d := range decrements {
			var res *gorm.DB
			switch {
			case d.VariantID != nil:
				q := tx.Model(&models.ProductVariant{}).Where("id = ?", *d.VariantID)
				if !d.AllowNegative {
					q = q.Where("inventory_quantity >= ?", d.Quantity)
				}
				res = q.UpdateColumn("inventory_quantity", gorm.Expr("inventory_quantity - ?", d.Quantity))
			default:
				q := tx.Model(&models.Product{}).Where("id = ?", d.ProductID)
				if !d.AllowNegative {
					q = q.Where("inventory_quantity >= ?", d.Quantity)
				}
				res = q.UpdateColumn("inventory_quantity", gorm.Expr("inventory_quantity - ?", d.Quantity))
			}
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInsufficientInventory
			}
		}
		if order.CouponID != nil {
			res := tx.Model(&models.Coupon{}).
				Where("id = ? AND (usage_limit IS NULL OR used_count < usage_limit)", *order.CouponID).
				UpdateColumn("used_count", gorm.Expr("used_count + 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrCouponExhausted
			}
		}
		return nil
	})
	if err != nil {
		return translate("place order", err)
	}
	return nil
}

// GetByID retrieves an order with items and payments.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").Preload("Payments").First(&order, "id = ?", id).Error; err != nil {
		return nil, translate("get order by id", err)
	}
	return &order, nil
}

// ListByUser returns a user's orders, newest first.
func (r *GORMOrderRepository) ListByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, translate("list orders by user", err)
	}
	return orders, nil
}

// List returns orders matching the filter, newest first.
func (r *GORMOrderRepository) List(filter OrderFilter) ([]models.Order, error) {
	q := r.db.Preload("Items").Order("created_at DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, translate("list orders", err)
	}
	return orders, nil
}

// Update saves order-level fields (status, payment status, milestones).
// Item snapshots are immutable and never rewritten.
func (r *GORMOrderRepository) Update(order *models.Order) error {
	res := r.db.Omit("Items", "Payments").Save(order)
	if res.Error != nil {
		return translate("update order", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update order", gorm.ErrRecordNotFound)
	}
	return nil
}

// AddPayment records one gateway transaction attempt.
func (r *GORMOrderRepository) AddPayment(payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if err := r.db.Create(payment).Error; err != nil {
		return translate("add payment", err)
	}
	return nil
}

// HasDeliveredProduct reports whether the user has a delivered order
// containing the product.
func (r *GORMOrderRepository) HasDeliveredProduct(userID, productID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND orders.status = ? AND order_items.product_id = ?",
			userID, models.OrderDelivered, productID).
		Count(&count).Error
	if err != nil {
		return false, translate("check delivered product", err)
	}
	return count > 0, nil
}

// Stats computes the admin dashboard aggregates.
func (r *GORMOrderRepository) Stats() (*DashboardStats, error) {
	var stats DashboardStats
	if err := r.db.Model(&models.Order{}).Count(&stats.OrderCount).Error; err != nil {
		return nil, translate("dashboard stats", err)
	}
	if err := r.db.Model(&models.Order{}).Where("status = ?", models.OrderPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return nil, translate("dashboard stats", err)
	}
	if err := r.db.Model(&models.Order{}).Where("payment_status = ?", models.PaymentStatusPaid).
		Select("COALESCE(SUM(total), 0)").Scan(&stats.PaidRevenue).Error; err != nil {
		return nil, translate("dashboard stats", err)
	}
	if err := r.db.Model(&models.User{}).Where("role = ?", models.RoleCustomer).
		Count(&stats.CustomerCount).Error; err != nil {
		return nil, translate("dashboard stats", err)
	}
	if err := r.db.Model(&models.Product{}).Where("inventory_quantity <= ?", 5).
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, translate("dashboard stats", err)
	}
	if err := r.db.Model(&models.Review{}).Where("is_approved = ?", false).
		Count(&stats.PendingReviews).Error; err != nil {
		return nil, translate("dashboard stats", err)
	}
	return &stats, nil
}
