package handler

import (
	"net/http"
	"strconv"

	"healthcare-appointment-backend/internal/models"
	"healthcare-appointment-backend/internal/service"
	"healthcare-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locationService *service.LocationService
}

func NewLocationHandler(locationService *service.LocationService) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
	}
}

type locationRequest struct {
	Name      string  `json:"name" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	Address   string  `json:"address" binding:"required"`
	UserID    uint    `json:"user_id" binding:"required"`
}

// Create stores a new saved location for a user
func (h *LocationHandler) Create(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	location := models.Location{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
		UserID:    req.UserID,
	}
	if err := h.locationService.SaveLocation(&location); err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Something wrong, please try again")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Location saved successfully",
		"location": location,
	})
}

// List returns all saved locations
func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.locationService.ListLocations()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch locations")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"locations": locations,
		"count":     len(locations),
	})
}

// ListForUser returns the locations one user saved
func (h *LocationHandler) ListForUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	locations, err := h.locationService.ListLocationsForUser(uint(userID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch locations")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"locations": locations,
		"count":     len(locations),
	})
}

// Update replaces the mutable location fields
func (h *LocationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid location ID")
		return
	}

	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	rows, err := h.locationService.UpdateLocation(uint(id), req.Name, req.Latitude, req.Longitude, req.Address, req.UserID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Something wrong, please try again")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":       "Location updated successfully",
		"rows_affected": rows,
	})
}

// Delete removes a saved location
func (h *LocationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid location ID")
		return
	}

	if _, err := h.locationService.DeleteLocation(uint(id)); err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Something wrong, please try again")
		return
	}

	utils.MessageResponse(c, "Location deleted successfully")
}
