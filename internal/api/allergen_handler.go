package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krthik777/nutritrackBackend/internal/core"
	"github.com/krthik777/nutritrackBackend/internal/models"
)

// AllergenHandler handles allergen API endpoints.
type AllergenHandler struct {
	allergenService core.AllergenService
}

// NewAllergenHandler creates a new AllergenHandler.
func NewAllergenHandler(as core.AllergenService) *AllergenHandler {
	return &AllergenHandler{allergenService: as}
}

// ListAllergens handles GET /api/allergens?email=.
func (h *AllergenHandler) ListAllergens(c *gin.Context) {
	email := c.Query("email")
	allergens, err := h.allergenService.ListByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, core.ErrMissingEmail) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Email is required to fetch allergens."})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch allergens.", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, allergens)
}

// CreateAllergen handles POST /api/allergens.
func (h *AllergenHandler) CreateAllergen(c *gin.Context) {
	var allergen models.Allergen
	if err := c.ShouldBindJSON(&allergen); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid allergen payload.", Details: err.Error()})
		return
	}

	stored, err := h.allergenService.Create(c.Request.Context(), &allergen)
	if err != nil {
		if errors.Is(err, core.ErrMissingEmail) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Email is required."})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Failed to save allergen.", Details: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// DeleteAllergen handles DELETE /api/allergens/:id. A malformed id is a
// client error; a well-formed id that matches nothing is a 404.
func (h *AllergenHandler) DeleteAllergen(c *gin.Context) {
	id := c.Param("id")
	if err := h.allergenService.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidID):
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid allergen id."})
		case errors.Is(err, core.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Allergen not found."})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to delete allergen.", Details: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Allergen deleted successfully."})
}
