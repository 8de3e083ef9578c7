package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dishcovery/api-go/controllers"
	"github.com/dishcovery/api-go/services"
)

func SetupRoutes(r *gin.Engine, pipeline *services.SearchPipeline, uploadDir string) {
	// Initialize controllers
	restaurantController := controllers.NewRestaurantController(pipeline)
	analyzeController := controllers.NewAnalyzeController(pipeline, uploadDir)

	SetupRestaurantRoutes(r, restaurantController)
	SetupAnalyzeRoutes(r, analyzeController)
}
