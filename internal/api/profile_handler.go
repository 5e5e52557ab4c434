package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krthik777/nutritrackBackend/internal/core"
	"github.com/krthik777/nutritrackBackend/internal/models"
)

// ProfileHandler handles profile API endpoints.
type ProfileHandler struct {
	profileService core.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(ps core.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: ps}
}

// GetProfile handles GET /api/profile?email=.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	email := c.Query("email")
	profile, err := h.profileService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrMissingEmail):
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Email is required."})
		case errors.Is(err, core.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Profile not found."})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch profile.", Details: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpsertProfile handles POST /api/profile. The submitted document fully
// replaces any existing profile for that email.
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid profile payload.", Details: err.Error()})
		return
	}

	stored, err := h.profileService.Upsert(c.Request.Context(), &profile)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrMissingEmail):
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Email is required."})
		case errors.Is(err, core.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, ErrorResponse{Message: "A profile with this email already exists."})
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Failed to save profile.", Details: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// HasDetails handles GET /api/hasdetails?email=. It reports only whether a
// profile exists.
func (h *ProfileHandler) HasDetails(c *gin.Context) {
	email := c.Query("email")
	exists, err := h.profileService.HasDetails(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, core.ErrMissingEmail) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Email is required."})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to check profile details.", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, ExistsResponse{Exists: exists})
}
