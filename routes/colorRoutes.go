package routes

import (
	"github.com/RedBeret/ChatPoweredEcommerce/controllers"
	"github.com/gin-gonic/gin"
)

func ColorRoutes(server *gin.Engine, colors *controllers.ColorController) {
	server.POST("/colors", colors.CreateColor)
	server.GET("/colors/:colorId", colors.GetColor)
	server.DELETE("/colors/:colorId", colors.DeleteColor)
}
