package routes

import (
	"github.com/RedBeret/ChatPoweredEcommerce/controllers"
	"github.com/RedBeret/ChatPoweredEcommerce/middlewares"
	"github.com/RedBeret/ChatPoweredEcommerce/session"
	"github.com/gin-gonic/gin"
)

func ShippingRoutes(server *gin.Engine, shipping *controllers.ShippingController, sessions session.Store) {
	group := server.Group("/shipping_info", middlewares.RequireAuth(sessions))
	{
		group.GET("", shipping.GetShippingInfo)
		group.POST("", shipping.CreateShippingInfo)
		group.PATCH("", shipping.UpdateShippingInfo)
		group.DELETE("", shipping.DeleteShippingInfo)
	}
}
