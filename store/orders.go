package store

import (
	"github.com/RedBeret/ChatPoweredEcommerce/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create writes the order header and all of its details as one unit of work.
// Validation happens before this is called; any failure here rolls the whole
// unit back, leaving no order or detail row behind.
func (r *OrderRepository) Create(order *models.Order, details []models.OrderDetail) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		return err
	}

	for i := range details {
		details[i].OrderID = order.ID
		if err := tx.Create(&details[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	order.OrderDetails = details
	return nil
}

func (r *OrderRepository) ByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("OrderDetails").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete removes the order and cascades to its details.
func (r *OrderRepository) Delete(id uint) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Unscoped().Where("order_id = ?", id).Delete(&models.OrderDetail{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Unscoped().Delete(&models.Order{}, id).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// CountRows reports order and detail row counts. Used to verify the
// all-or-nothing creation invariant.
func (r *OrderRepository) CountRows() (orders int64, details int64, err error) {
	if err = r.db.Model(&models.Order{}).Count(&orders).Error; err != nil {
		return
	}
	err = r.db.Model(&models.OrderDetail{}).Count(&details).Error
	return
}
