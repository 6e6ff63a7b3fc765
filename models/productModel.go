package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	// Price is stored in minor currency units (cents).
	Price     int            `json:"price" binding:"required"`
	Quantity  int            `json:"quantity" binding:"required,min=1"`
	ImagePath string         `json:"image_path"`
	ImageAlt  string         `json:"imageAlt"`
	Colors    datatypes.JSON `json:"colors"`
}

type UpdateProductInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
	ImagePath   *string `json:"image_path"`
	ImageAlt    *string `json:"imageAlt"`
}
