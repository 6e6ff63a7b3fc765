package services

import (
	"errors"
	"fmt"

	"github.com/RedBeret/ChatPoweredEcommerce/apperr"
	"github.com/RedBeret/ChatPoweredEcommerce/models"
	"github.com/RedBeret/ChatPoweredEcommerce/store"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const msgOrderNotFound = "Order not found"

// OrderService creates an order together with its line items as one
// all-or-nothing unit. All validation runs before anything is written, so the
// common failure paths never open a transaction; only an infrastructure fault
// inside the unit of work triggers a rollback.
type OrderService struct {
	orders   *store.OrderRepository
	accounts *store.AccountRepository
	catalog  *store.ProductRepository
	log      zerolog.Logger
}

func NewOrderService(orders *store.OrderRepository, accounts *store.AccountRepository, catalog *store.ProductRepository, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, accounts: accounts, catalog: catalog, log: log}
}

func (s *OrderService) Create(userID uint, shippingInfoID *uint, items []models.OrderItemInput) (*models.Order, error) {
	if _, err := s.accounts.ByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(msgUserNotFound)
		}
		return nil, apperr.Internal(err)
	}

	if len(items) == 0 {
		return nil, apperr.Validation("order_details must contain at least one item")
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, apperr.Validation(
				fmt.Sprintf("quantity for product %d must be at least 1", item.ProductID))
		}
	}
	for _, item := range items {
		if _, err := s.catalog.ByID(item.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound(fmt.Sprintf("Product %d not found", item.ProductID))
			}
			return nil, apperr.Internal(err)
		}
	}

	order := models.Order{UserID: userID, ShippingInfoID: shippingInfoID}
	details := make([]models.OrderDetail, len(items))
	for i, item := range items {
		details[i] = models.OrderDetail{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	if err := s.orders.Create(&order, details); err != nil {
		s.log.Error().Err(err).Uint("user_id", userID).Msg("order creation rolled back")
		return nil, apperr.Transaction(err)
	}

	s.log.Info().Uint("order_id", order.ID).Uint("user_id", userID).
		Int("items", len(details)).Msg("order created")
	return &order, nil
}

func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.orders.ByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(msgOrderNotFound)
		}
		return nil, apperr.Internal(err)
	}
	return order, nil
}

// Delete removes the order and all of its details as one unit.
func (s *OrderService) Delete(id uint) error {
	if _, err := s.orders.ByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(msgOrderNotFound)
		}
		return apperr.Internal(err)
	}
	if err := s.orders.Delete(id); err != nil {
		return apperr.Transaction(err)
	}
	return nil
}
