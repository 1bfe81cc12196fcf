package handler

import (
	"net/http"
	"strconv"

	"healthcare-appointment-backend/internal/service"
	"healthcare-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

// ListForHospital returns every appointment reachable from a hospital
func (h *AppointmentHandler) ListForHospital(c *gin.Context) {
	hospitalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	appointments, err := h.appointmentService.ListAppointmentsForHospital(uint(hospitalID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// SelectForHospital filters a hospital's appointments by one or more user
// ids, passed as repeated user_id query parameters
func (h *AppointmentHandler) SelectForHospital(c *gin.Context) {
	hospitalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	rawUserIDs := c.QueryArray("user_id")
	if len(rawUserIDs) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "At least one user_id is required")
		return
	}

	userIDs := make([]uint, 0, len(rawUserIDs))
	for _, raw := range rawUserIDs {
		userID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user_id: "+raw)
			return
		}
		userIDs = append(userIDs, uint(userID))
	}

	appointments, err := h.appointmentService.SelectAppointments(uint(hospitalID), userIDs)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appointments,
		"count":        len(appointments),
	})
}
