package handler

import (
	"errors"
	"net/http"
	"strconv"

	"healthcare-appointment-backend/internal/service"
	"healthcare-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type registerUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// Register creates a new user account
func (h *UserHandler) Register(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.userService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			utils.ErrorResponse(c, http.StatusBadRequest, "Email already registered")
		} else {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Something wrong, please try again")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login checks the credentials and returns the user row. The mobile app
// distinguishes an unknown email (402) from a wrong password (403).
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			utils.ErrorResponse(c, http.StatusPaymentRequired, "Not authorized, wrong email")
		case errors.Is(err, service.ErrWrongPassword):
			utils.ErrorResponse(c, http.StatusForbidden, "Not authorized, wrong password")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to check credentials")
		}
		return
	}

	utils.SuccessResponse(c, user)
}

// Update replaces the user's name, email and optionally their password
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	rows, err := h.userService.UpdateUser(uint(id), req.Name, req.Email, req.Password)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Something wrong, please try again")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":       "User updated successfully",
		"rows_affected": rows,
	})
}

// Delete removes a user account
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if _, err := h.userService.DeleteUser(uint(id)); err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Something wrong, please try again")
		return
	}

	utils.MessageResponse(c, "User deleted successfully")
}
