package routes

import (
	"github.com/RedBeret/ChatPoweredEcommerce/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController) {
	userAuth := server.Group("/user_auth")
	{
		userAuth.POST("", auth.Register)
		userAuth.GET("", auth.ListAccounts)
		userAuth.DELETE("", auth.DeleteAccount)
		userAuth.PATCH("", auth.ChangePassword)
	}

	server.POST("/login", auth.Login)
	server.POST("/logout", auth.Logout)
	server.GET("/check_session", auth.CheckSession)
}
