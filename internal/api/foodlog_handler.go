package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krthik777/nutritrackBackend/internal/core"
	"github.com/krthik777/nutritrackBackend/internal/models"
)

// FoodLogHandler handles food-log API endpoints including the weekly
// calorie summary.
type FoodLogHandler struct {
	foodLogService core.FoodLogService
}

// NewFoodLogHandler creates a new FoodLogHandler.
func NewFoodLogHandler(fs core.FoodLogService) *FoodLogHandler {
	return &FoodLogHandler{foodLogService: fs}
}

// ListFoodLogs handles GET /api/foodLog?email=.
func (h *FoodLogHandler) ListFoodLogs(c *gin.Context) {
	email := c.Query("email")
	entries, err := h.foodLogService.ListByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, core.ErrMissingEmail) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Email is required to fetch food logs."})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch food logs.", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateFoodLog handles POST /api/foodLog. All six business fields must be
// present; the creation timestamp is assigned server-side.
func (h *FoodLogHandler) CreateFoodLog(c *gin.Context) {
	var entry models.FoodLog
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid food log payload.", Details: err.Error()})
		return
	}

	stored, err := h.foodLogService.Create(c.Request.Context(), &entry)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrMissingEmail):
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Email is required."})
		case errors.Is(err, core.ErrMissingField):
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "All fields are required.", Details: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to save food log.", Details: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// WeeklyCalories handles GET /api/weeklycalo?email=. The response is a
// fixed 7-element array, Sunday through Saturday.
func (h *FoodLogHandler) WeeklyCalories(c *gin.Context) {
	email := c.Query("email")
	summary, err := h.foodLogService.WeeklyCalories(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, core.ErrMissingEmail) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Email is required to fetch weekly calories."})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to compute weekly calories.", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
