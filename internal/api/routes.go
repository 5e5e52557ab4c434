package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/krthik777/nutritrackBackend/internal/core"
)

// SetupRoutes registers all application routes. Global middleware
// (request ID, logging, recovery, CORS) is expected to be applied to the
// router before this is called, in main.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	profileService core.ProfileService,
	allergenService core.AllergenService,
	mealPlanService core.MealPlanService,
	foodLogService core.FoodLogService,
	uploadService core.UploadService,
) {
	profileHandler := NewProfileHandler(profileService)
	allergenHandler := NewAllergenHandler(allergenService)
	mealPlanHandler := NewMealPlanHandler(mealPlanService)
	foodLogHandler := NewFoodLogHandler(foodLogService)
	uploadHandler := NewUploadHandler(uploadService)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/allergens", allergenHandler.ListAllergens)
		apiGroup.POST("/allergens", allergenHandler.CreateAllergen)
		apiGroup.DELETE("/allergens/:id", allergenHandler.DeleteAllergen)

		apiGroup.GET("/mealPlanner", mealPlanHandler.ListMealPlans)
		apiGroup.POST("/mealPlanner", mealPlanHandler.CreateMealPlan)

		apiGroup.GET("/profile", profileHandler.GetProfile)
		apiGroup.POST("/profile", profileHandler.UpsertProfile)
		apiGroup.GET("/hasdetails", profileHandler.HasDetails)

		apiGroup.GET("/foodLog", foodLogHandler.ListFoodLogs)
		apiGroup.POST("/foodLog", foodLogHandler.CreateFoodLog)
		apiGroup.GET("/weeklycalo", foodLogHandler.WeeklyCalories)

		apiGroup.POST("/uploadImage", uploadHandler.UploadImage)
		apiGroup.POST("/scanfood", uploadHandler.ScanFood)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured under /api")
}
