package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Ezo333/Mini-game/internal/config"
	"github.com/Ezo333/Mini-game/internal/handlers"
	"github.com/Ezo333/Mini-game/internal/middleware"
	"github.com/Ezo333/Mini-game/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := services.NewStore(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer store.Close()

	jwtService := services.NewJWTService(cfg)
	profiles := services.NewProfileService(store)
	rooms := services.NewRoomEngine(store, profiles)
	solo := services.NewSoloEngine(store, profiles)

	wsHandler := handlers.NewWebSocketHandler()
	rooms.SetBroadcaster(wsHandler)

	// Pay out solo games whose clients went away before reporting back.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			solo.SweepExpired()
		}
	}()

	authHandler := handlers.NewAuthHandler(jwtService)
	userHandler := handlers.NewUserHandler(profiles)
	roomHandler := handlers.NewRoomHandler(rooms)
	soloHandler := handlers.NewSoloHandler(solo)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.POST("/auth/guest", authHandler.GuestLogin)

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(jwtService))
	protected.Use(middleware.RateLimitMiddleware(store))
	{
		protected.GET("/ws", wsHandler.HandleWebSocket)

		roomRoutes := protected.Group("/rooms")
		{
			roomRoutes.POST("/create", roomHandler.CreateRoom)
			roomRoutes.POST("/join", roomHandler.JoinRoom)
			roomRoutes.POST("/guess", roomHandler.SubmitGuess)
			roomRoutes.GET("/:code", roomHandler.GetRoomStatus)
		}

		soloRoutes := protected.Group("/solo")
		{
			soloRoutes.POST("/create", soloHandler.CreateGame)
			soloRoutes.POST("/guess", soloHandler.SubmitGuess)
			soloRoutes.POST("/complete", soloHandler.CompleteGame)
		}

		userRoutes := protected.Group("/users")
		{
			userRoutes.GET("/leaderboard", userHandler.GetLeaderboard)
			userRoutes.GET("/:username", userHandler.GetProfile)
			userRoutes.POST("/spend", userHandler.SpendCoins)
		}
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
