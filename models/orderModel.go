package models

import "gorm.io/gorm"

type Order struct {
	gorm.Model
	UserID         uint          `json:"user_id"`
	ShippingInfoID *uint         `json:"shipping_info_id"`
	OrderDetails   []OrderDetail `json:"order_details" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderDetail struct {
	gorm.Model
	OrderID   uint `json:"order_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type OrderItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderInput struct {
	// UserID is optional; when present it must match the session user.
	UserID         *uint            `json:"user_id"`
	ShippingInfoID *uint            `json:"shipping_info_id"`
	OrderDetails   []OrderItemInput `json:"order_details" binding:"required"`
}
