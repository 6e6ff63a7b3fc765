package initializers

import (
	"github.com/RedBeret/ChatPoweredEcommerce/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.ShippingInfo{},
		&models.Product{},
		&models.Color{},
		&models.ChatMessage{},
		&models.Order{},
		&models.OrderDetail{},
	)
}
