package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dishcovery/api-go/models"
	"github.com/dishcovery/api-go/services"
	"github.com/dishcovery/api-go/utils"
)

type RestaurantController struct {
	Pipeline *services.SearchPipeline
}

func NewRestaurantController(pipeline *services.SearchPipeline) *RestaurantController {
	return &RestaurantController{Pipeline: pipeline}
}

type CuisineSearchQuery struct {
	Cuisine     string  `form:"cuisine"`
	Page        int     `form:"page,default=1"`
	Limit       int     `form:"limit,default=6"`
	Latitude    string  `form:"latitude"`
	Longitude   string  `form:"longitude"`
	MaxDistance float64 `form:"maxDistance"`
}

// GetRestaurantsByCuisine godoc
// @Summary Search restaurants by cuisine text, optionally ranked by proximity
// @Tags restaurants
// @Produce json
// @Param cuisine query string true "Cuisine substring to match"
// @Param page query integer false "Page number (default: 1)"
// @Param limit query integer false "Items per page (default: 6)"
// @Param latitude query string false "Search origin latitude"
// @Param longitude query string false "Search origin longitude"
// @Param maxDistance query number false "Maximum distance in km (default: 50)"
// @Success 200 {object} models.PageResult
// @Router /restaurants-by-cuisine [get]
func (rc *RestaurantController) GetRestaurantsByCuisine(c *gin.Context) {
	var query CuisineSearchQuery

	// Fall back to lenient manual parsing when binding rejects a value;
	// malformed paging input degrades to the defaults rather than a 400.
	if err := c.ShouldBindQuery(&query); err != nil {
		query.Cuisine = c.Query("cuisine")
		query.Page = utils.ParsePositiveInt(c.Query("page"), utils.DefaultPage)
		query.Limit = utils.ParsePositiveInt(c.Query("limit"), utils.DefaultPageSize)
		query.Latitude = c.Query("latitude")
		query.Longitude = c.Query("longitude")
		if v, err := strconv.ParseFloat(c.Query("maxDistance"), 64); err == nil {
			query.MaxDistance = v
		}
	}

	result, err := rc.Pipeline.SearchByCuisine(c.Request.Context(), services.SearchQuery{
		Cuisine:       query.Cuisine,
		Origin:        models.ParseGeoPoint(query.Latitude, query.Longitude),
		MaxDistanceKm: query.MaxDistance,
		Page:          query.Page,
		PageSize:      query.Limit,
	})
	if err != nil {
		rc.writeSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRestaurantByID godoc
// @Summary Get a single restaurant by its external id
// @Tags restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} models.Restaurant
// @Router /restaurant/{id} [get]
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	restaurant, err := rc.Pipeline.GetRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
			return
		}
		log.Printf("Error fetching restaurant details: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func (rc *RestaurantController) writeSearchError(c *gin.Context, err error) {
	var notFound *services.NotFoundError

	switch {
	case errors.Is(err, services.ErrInvalidQuery):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuisine query parameter is required."})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFound.Message()})
	default:
		log.Printf("Error fetching restaurants: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
	}
}
