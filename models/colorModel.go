package models

import "gorm.io/gorm"

type Color struct {
	gorm.Model
	Name string `json:"name" binding:"required" gorm:"not null"`
}
