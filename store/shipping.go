package store

import (
	"github.com/RedBeret/ChatPoweredEcommerce/models"
	"gorm.io/gorm"
)

type ShippingRepository struct {
	db *gorm.DB
}

func NewShippingRepository(db *gorm.DB) *ShippingRepository {
	return &ShippingRepository{db: db}
}

func (r *ShippingRepository) Create(info *models.ShippingInfo) error {
	return r.db.Create(info).Error
}

func (r *ShippingRepository) ByUserID(userID uint) (*models.ShippingInfo, error) {
	var info models.ShippingInfo
	if err := r.db.Where("user_id = ?", userID).First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *ShippingRepository) Update(userID uint, fields map[string]any) error {
	result := r.db.Model(&models.ShippingInfo{}).Where("user_id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ShippingRepository) Delete(userID uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.ShippingInfo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
