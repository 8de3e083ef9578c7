package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dishcovery/api-go/controllers"
)

func SetupAnalyzeRoutes(r *gin.Engine, analyzeController *controllers.AnalyzeController) {
	api := r.Group("/api")
	{
		api.POST("/analyze-image", analyzeController.AnalyzeImage)
	}
}
