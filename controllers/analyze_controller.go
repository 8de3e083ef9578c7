package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dishcovery/api-go/services"
	"github.com/dishcovery/api-go/utils"
)

type AnalyzeController struct {
	Pipeline  *services.SearchPipeline
	UploadDir string
}

func NewAnalyzeController(pipeline *services.SearchPipeline, uploadDir string) *AnalyzeController {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}
	return &AnalyzeController{Pipeline: pipeline, UploadDir: uploadDir}
}

// AnalyzeImage godoc
// @Summary Detect the cuisine in an uploaded food photo and search by it
// @Tags restaurants
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Food photo"
// @Param page query integer false "Page number (default: 1)"
// @Param limit query integer false "Items per page (default: 6)"
// @Success 200 {object} map[string]interface{}
// @Router /api/analyze-image [post]
func (ac *AnalyzeController) AnalyzeImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "No image uploaded.",
		})
		return
	}

	// The upload only lives long enough to be classified; remove it on every
	// exit path so the uploads dir cannot grow without bound.
	imagePath := filepath.Join(ac.UploadDir, fmt.Sprintf("image-%s%s", uuid.New().String(), filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, imagePath); err != nil {
		log.Printf("Error saving uploaded image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to store uploaded image",
		})
		return
	}
	defer func() {
		if err := os.Remove(imagePath); err != nil && !os.IsNotExist(err) {
			log.Printf("Error removing uploaded image %s: %v", imagePath, err)
		}
	}()

	imageBytes, err := os.ReadFile(imagePath)
	if err != nil {
		log.Printf("Error reading uploaded image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to read uploaded image",
		})
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	page := utils.ParsePositiveInt(c.Query("page"), utils.DefaultPage)
	limit := utils.ParsePositiveInt(c.Query("limit"), utils.DefaultPageSize)

	result, err := ac.Pipeline.SearchByImage(c.Request.Context(), imageBytes, mimeType, page, limit)
	if err != nil {
		log.Printf("Error in image analysis: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to analyze image or find matching restaurants",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"detectedCuisine": result.DetectedCuisine,
		"result":          result.Page.Items,
		"currentPage":     result.Page.CurrentPage,
		"totalPages":      result.Page.TotalPages,
		"totalResults":    result.Page.TotalResults,
	})
}
