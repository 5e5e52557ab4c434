package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krthik777/nutritrackBackend/internal/core"
	"github.com/krthik777/nutritrackBackend/internal/models"
)

// MealPlanHandler handles meal-planner API endpoints.
type MealPlanHandler struct {
	mealPlanService core.MealPlanService
}

// NewMealPlanHandler creates a new MealPlanHandler.
func NewMealPlanHandler(ms core.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{mealPlanService: ms}
}

// ListMealPlans handles GET /api/mealPlanner?email=.
func (h *MealPlanHandler) ListMealPlans(c *gin.Context) {
	email := c.Query("email")
	meals, err := h.mealPlanService.ListByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, core.ErrMissingEmail) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Email is required to fetch meal plans."})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch meal plans.", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// CreateMealPlan handles POST /api/mealPlanner.
func (h *MealPlanHandler) CreateMealPlan(c *gin.Context) {
	var meal models.MealPlan
	if err := c.ShouldBindJSON(&meal); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid meal plan payload.", Details: err.Error()})
		return
	}

	stored, err := h.mealPlanService.Create(c.Request.Context(), &meal)
	if err != nil {
		if errors.Is(err, core.ErrMissingEmail) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Email is required."})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Failed to save meal plan.", Details: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, stored)
}
