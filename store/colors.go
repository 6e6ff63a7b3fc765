package store

import (
	"github.com/RedBeret/ChatPoweredEcommerce/models"
	"gorm.io/gorm"
)

type ColorRepository struct {
	db *gorm.DB
}

func NewColorRepository(db *gorm.DB) *ColorRepository {
	return &ColorRepository{db: db}
}

func (r *ColorRepository) Create(color *models.Color) error {
	return r.db.Create(color).Error
}

func (r *ColorRepository) ByID(id uint) (*models.Color, error) {
	var color models.Color
	if err := r.db.First(&color, id).Error; err != nil {
		return nil, err
	}
	return &color, nil
}

func (r *ColorRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Color{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
