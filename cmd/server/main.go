package main

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"neurolearn/config"
	"neurolearn/controllers"
	"neurolearn/db"
	"neurolearn/middlewares"
	"neurolearn/routes"
	"neurolearn/services"
	"neurolearn/utils"
	"neurolearn/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTConfig(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	ctx := context.Background()
	chat, err := services.NewChatCompleter(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize generation client: %v", err)
	}

	// Image generation always goes through OpenAI, even when lesson text
	// comes from another provider.
	var images services.ImageCreator
	if imageClient, err := services.NewOpenAIClient(cfg.Openai.ApiKey, cfg.Openai.Model, cfg.Openai.ImageModel); err != nil {
		log.Printf("Image generation disabled: %v", err)
	} else {
		images = imageClient
	}

	monitor := websocket.NewMonitor()
	controllers.InitGenerationController(services.NewGenerationService(chat, images))
	controllers.InitEventController(monitor)

	router := setupRouter(cfg, monitor)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config, monitor *websocket.Monitor) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	allowOrigins := cfg.Server.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "online", "service": "neurolearn"})
	})

	router.POST("/signup", routes.SignUpRouteHandler)
	router.POST("/login", routes.LoginRouteHandler)

	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		routes.SetupPredictRoutes(auth)
		routes.SetupGenerateRoutes(auth)
		routes.SetupLearnerRoutes(auth)

		auth.GET("/ws/monitor", monitor.Handler)
	}

	return router
}
