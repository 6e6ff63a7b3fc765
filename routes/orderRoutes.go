package routes

import (
	"github.com/RedBeret/ChatPoweredEcommerce/controllers"
	"github.com/RedBeret/ChatPoweredEcommerce/middlewares"
	"github.com/RedBeret/ChatPoweredEcommerce/session"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, orders *controllers.OrderController, sessions session.Store) {
	server.POST("/orders", middlewares.RequireAuth(sessions), orders.CreateOrder)
	server.GET("/orders/:orderId", orders.GetOrder)
	server.DELETE("/orders/:orderId", orders.DeleteOrder)
}
