package main

import (
	"log"
	"time"

	"github.com/RedBeret/ChatPoweredEcommerce/auth"
	"github.com/RedBeret/ChatPoweredEcommerce/config"
	"github.com/RedBeret/ChatPoweredEcommerce/controllers"
	"github.com/RedBeret/ChatPoweredEcommerce/initializers"
	"github.com/RedBeret/ChatPoweredEcommerce/logger"
	"github.com/RedBeret/ChatPoweredEcommerce/middlewares"
	"github.com/RedBeret/ChatPoweredEcommerce/routes"
	"github.com/RedBeret/ChatPoweredEcommerce/services"
	"github.com/RedBeret/ChatPoweredEcommerce/session"
	"github.com/RedBeret/ChatPoweredEcommerce/store"
	"github.com/RedBeret/ChatPoweredEcommerce/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	appLog := logger.New("chat-powered-ecommerce", cfg.LogLevel)

	db, err := initializers.ConnectToDB(cfg.DatabaseDSN)
	if err != nil {
		appLog.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := initializers.SyncDatabase(db); err != nil {
		appLog.Fatal().Err(err).Msg("failed to sync database")
	}
	appLog.Info().Msg("database synced successfully")

	hasher := auth.NewHasher()
	sessions := session.NewMemoryStore()

	accountRepo := store.NewAccountRepository(db)
	orderRepo := store.NewOrderRepository(db)
	productRepo := store.NewProductRepository(db)
	colorRepo := store.NewColorRepository(db)
	chatRepo := store.NewChatMessageRepository(db)
	shippingRepo := store.NewShippingRepository(db)

	accountSvc := services.NewAccountService(accountRepo, hasher, sessions, appLog)
	sessionSvc := services.NewSessionService(accountRepo, hasher, sessions, appLog)
	orderSvc := services.NewOrderService(orderRepo, accountRepo, productRepo, appLog)
	chatClient := utils.NewChatClient(cfg.ChatAPIBaseURL, cfg.ChatAPIKey, cfg.ChatModel)

	authCtl := controllers.NewAuthController(accountSvc, sessionSvc, cfg.SecureCookies, appLog)
	orderCtl := controllers.NewOrderController(orderSvc, appLog)
	productCtl := controllers.NewProductController(productRepo, appLog)
	colorCtl := controllers.NewColorController(colorRepo, appLog)
	chatCtl := controllers.NewChatController(chatRepo, chatClient, appLog)
	shippingCtl := controllers.NewShippingController(shippingRepo, appLog)

	server := gin.Default()
	server.Use(middlewares.Metrics())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, authCtl)
	routes.OrderRoutes(server, orderCtl, sessions)
	routes.ProductRoutes(server, productCtl)
	routes.ColorRoutes(server, colorCtl)
	routes.ChatRoutes(server, chatCtl)
	routes.ShippingRoutes(server, shippingCtl, sessions)

	if err := server.Run(cfg.HTTPAddr); err != nil {
		appLog.Fatal().Err(err).Msg("server stopped")
	}
}
