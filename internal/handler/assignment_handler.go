package handler

import (
	"errors"
	"net/http"
	"strconv"

	"healthcare-appointment-backend/internal/repository"
	"healthcare-appointment-backend/internal/service"
	"healthcare-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	assignmentService *service.AssignmentService
}

func NewAssignmentHandler(assignmentService *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

type createAssignmentRequest struct {
	HospitalID uint `json:"hospital_id" binding:"required"`
	DoctorID   uint `json:"doctor_id" binding:"required"`
}

// Create links a doctor to a hospital
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req createAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(req.HospitalID, req.DoctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Hospital or doctor not found")
		} else {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Something wrong, please try again")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    "Doctor assigned successfully",
		"assignment": assignment,
	})
}

// ListForHospital returns a hospital's assignments with doctor data
func (h *AssignmentHandler) ListForHospital(c *gin.Context) {
	hospitalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	assignments, err := h.assignmentService.ListAssignmentsForHospital(uint(hospitalID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch assignments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"assignments": assignments,
		"count":       len(assignments),
	})
}

// Delete removes an assignment together with its appointments
func (h *AssignmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid assignment ID")
		return
	}

	if err := h.assignmentService.DeleteAssignment(uint(id)); err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Something wrong, please try again")
		return
	}

	utils.MessageResponse(c, "Assignment deleted successfully")
}

// ListDoctors returns all doctors
func (h *AssignmentHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.assignmentService.ListDoctors()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}
