package routes

import (
	"github.com/RedBeret/ChatPoweredEcommerce/controllers"
	"github.com/gin-gonic/gin"
)

func ChatRoutes(server *gin.Engine, chat *controllers.ChatController) {
	server.POST("/chat_messages", chat.CreateMessage)
	server.GET("/chat_messages/:messageId", chat.GetMessage)
}
