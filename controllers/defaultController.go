package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the ChatPoweredEcommerce API.

The following are the endpoints for this API:

AUTH
- POST "/user_auth" - Register (and log in) a new user
- GET "/user_auth" - List users
- PATCH "/user_auth" - Change password
- DELETE "/user_auth" - Delete account by credential
- POST "/login" - Log in
- POST "/logout" - Log out
- GET "/check_session" - Read session state

ORDERS
- POST "/orders" - Create an order with its line items
- GET "/orders/{orderId}" - Get order by ID
- DELETE "/orders/{orderId}" - Delete order by ID

CATALOG
- GET "/product" - List products
- GET "/product/{productId}" - Get product by ID
- POST "/product" - Create product
- PATCH "/product/{productId}" - Update product
- DELETE "/product/{productId}" - Delete product
- POST "/colors" - Create color
- GET "/colors/{colorId}" - Get color by ID
- DELETE "/colors/{colorId}" - Delete color

OTHER
- POST "/chat_messages" - Store a chat message
- GET "/chat_messages/{messageId}" - Get chat message by ID
- GET/POST/PATCH/DELETE "/shipping_info" - Session user's shipping profile
- GET "/metrics" - Prometheus metrics`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
