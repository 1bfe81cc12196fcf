package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"healthcare-appointment-backend/internal/models"
	"healthcare-appointment-backend/internal/repository"
	"healthcare-appointment-backend/internal/service"
	"healthcare-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
}

func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

type updateHospitalRequest struct {
	Name      string  `json:"name" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	Address   string  `json:"address" binding:"required"`
}

// RegisterHospital creates a new hospital from a multipart form, storing the
// optional picture upload alongside it
func (h *HospitalHandler) RegisterHospital(c *gin.Context) {
	latitude, err := strconv.ParseFloat(c.PostForm("latitude"), 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid latitude")
		return
	}
	longitude, err := strconv.ParseFloat(c.PostForm("longitude"), 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid longitude")
		return
	}

	hospital := models.Hospital{
		Name:      c.PostForm("name"),
		Latitude:  latitude,
		Longitude: longitude,
		Address:   c.PostForm("address"),
	}
	if hospital.Name == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Name is required")
		return
	}

	// Picture upload is optional
	var pictureName string
	var picture io.Reader
	if fileHeader, err := c.FormFile("picture"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Failed to read picture upload")
			return
		}
		defer file.Close()
		pictureName = fileHeader.Filename
		picture = file
	}

	if err := h.hospitalService.RegisterHospital(&hospital, pictureName, picture); err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Something wrong, please try again")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Hospital registered successfully",
		"hospital": hospital,
	})
}

// GetHospital returns the aggregate detail view for one hospital
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	detail, err := h.hospitalService.GetHospitalDetail(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Hospital not found")
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospital")
		}
		return
	}

	utils.SuccessResponse(c, detail)
}

// ListHospitals returns all hospitals with their primary doctor attached
func (h *HospitalHandler) ListHospitals(c *gin.Context) {
	hospitals, err := h.hospitalService.ListHospitals()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospitals")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// UpdateHospital replaces the mutable hospital fields
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	var req updateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	rows, err := h.hospitalService.UpdateHospital(uint(id), req.Name, req.Latitude, req.Longitude, req.Address)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Something wrong, please try again")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":       "Hospital updated successfully",
		"rows_affected": rows,
	})
}

// DeleteHospital removes a hospital with everything reachable from it
func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	if err := h.hospitalService.DeleteHospital(uint(id)); err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Something wrong, please try again")
		return
	}

	utils.MessageResponse(c, "Hospital deleted successfully")
}
