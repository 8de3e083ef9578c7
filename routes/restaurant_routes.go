package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dishcovery/api-go/controllers"
)

func SetupRestaurantRoutes(r *gin.Engine, restaurantController *controllers.RestaurantController) {
	r.GET("/restaurants-by-cuisine", restaurantController.GetRestaurantsByCuisine)
	r.GET("/restaurant/:id", restaurantController.GetRestaurantByID)
}
