package routes

import (
	"github.com/RedBeret/ChatPoweredEcommerce/controllers"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine, products *controllers.ProductController) {
	server.GET("/product", products.GetProducts)
	server.POST("/product", products.CreateProduct)
	server.GET("/product/:productId", products.GetProduct)
	server.PATCH("/product/:productId", products.UpdateProduct)
	server.DELETE("/product/:productId", products.DeleteProduct)
}
