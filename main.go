package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/Kavitha0809/Redesign-IRCTC/database"
	"github.com/Kavitha0809/Redesign-IRCTC/handlers"
	"github.com/Kavitha0809/Redesign-IRCTC/services"
	"github.com/Kavitha0809/Redesign-IRCTC/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	// Initialize database
	database.InitDB()

	// Recommendation/price engine over the seeded reference tables
	engine := services.NewEngine(services.DefaultEngineConfig())

	// Flat-file credential store (demo auth)
	usersFile := os.Getenv("USERS_FILE")
	if usersFile == "" {
		usersFile = "users.json"
	}
	users := store.NewUserStore(usersFile)

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	// CORS — allow configured frontend origins
	frontendURLs := os.Getenv("FRONTEND_URL")
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if frontendURLs != "" {
		for _, u := range strings.Split(frontendURLs, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler)
		api.POST("/auth", handlers.AuthHandler(users))
		api.GET("/search", handlers.SearchHandler(engine))
		api.GET("/stations/suggest", handlers.SuggestStationsHandler)
		api.GET("/recommendations", handlers.RecommendationsHandler(engine))
		api.POST("/predict-price", handlers.PredictPriceHandler(engine))
		api.POST("/bookings", handlers.CreateBookingHandler)
		api.GET("/bookings/:pnr", handlers.GetBookingHandler)
		api.GET("/bookings/:pnr/ticket", handlers.DownloadTicketHandler)
		api.GET("/track/:number", handlers.TrackHandler)
		api.GET("/analytics", handlers.AnalyticsHandler)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Redesign-IRCTC backend starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
