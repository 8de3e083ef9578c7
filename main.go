package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dishcovery/api-go/clients"
	"github.com/dishcovery/api-go/config"
	"github.com/dishcovery/api-go/routes"
	"github.com/dishcovery/api-go/services"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Initialize database
	restaurants := config.InitDB()

	// Initialize the Gemini-backed image model
	geminiConfig := config.GetGeminiConfig()
	gemini, err := clients.NewGeminiClient(context.Background(), geminiConfig.APIKey, geminiConfig.Model)
	if err != nil {
		log.Fatal("Failed to create gemini client:", err)
	}
	defer gemini.Close()

	store := services.NewMongoRestaurantStore(restaurants)
	classifier := services.NewCuisineClassifier(gemini)
	pipeline := services.NewSearchPipeline(store, classifier)

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))

	// Development CORS configuration: allow all origins
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = false
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
	r.Use(cors.New(corsConfig))

	// Initialize routes
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	routes.SetupRoutes(r, pipeline, uploadDir)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "6969"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
