// internal/handlers/auth.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/services"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account
// POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	response, err := h.authService.Register(&req)
	if err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(vErrs))
			return
		}
		if strings.Contains(err.Error(), "already exists") {
			utils.ConflictResponse(c, "User with this email already exists")
			return
		}
		utils.InternalErrorResponse(c, "Failed to register user")
		return
	}

	utils.CreatedResponse(c, response)
}

// Login authenticates a user and returns tokens
// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(vErrs))
			return
		}
		if strings.Contains(err.Error(), "invalid email or password") {
			utils.UnauthorizedResponse(c, "Invalid email or password")
			return
		}
		utils.InternalErrorResponse(c, "Login failed")
		return
	}

	utils.SuccessResponse(c, response)
}

// RefreshToken exchanges a refresh token for a new token pair
// POST /v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Refresh token is required", nil)
		return
	}

	response, err := h.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		utils.UnauthorizedResponse(c, "Invalid or expired refresh token")
		return
	}

	utils.SuccessResponse(c, response)
}

// Me returns the authenticated user's profile
// GET /v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "User")
			return
		}
		utils.InternalErrorResponse(c, "Failed to load user")
		return
	}

	utils.SuccessResponse(c, user)
}
