package controllers

import (
	"net/http"
	"strconv"

	"github.com/RedBeret/ChatPoweredEcommerce/middlewares"
	"github.com/RedBeret/ChatPoweredEcommerce/models"
	"github.com/RedBeret/ChatPoweredEcommerce/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type OrderController struct {
	orders *services.OrderService
	log    zerolog.Logger
}

func NewOrderController(orders *services.OrderService, log zerolog.Logger) *OrderController {
	return &OrderController{orders: orders, log: log}
}

// CreateOrder places an order for the session user. A body user_id that
// disagrees with the session is rejected.
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	sess, ok := middlewares.SessionFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input models.CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if input.UserID != nil && *input.UserID != sess.UserID {
		sendErrorResponse(ctx, http.StatusForbidden, "Cannot create orders for another user")
		return
	}

	order, err := c.orders.Create(sess.UserID, input.ShippingInfoID, input.OrderDetails)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusCreated, order)
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := c.orders.Get(uint(id))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

func (c *OrderController) DeleteOrder(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	if err := c.orders.Delete(uint(id)); err != nil {
		respondError(ctx, c.log, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
