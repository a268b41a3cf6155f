// internal/handlers/contact.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/services"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

type ContactHandler struct {
	adminService *services.AdminService
}

func NewContactHandler(adminService *services.AdminService) *ContactHandler {
	return &ContactHandler{adminService: adminService}
}

// Create accepts a contact form submission
// POST /v1/contact
func (h *ContactHandler) Create(c *gin.Context) {
	var req services.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	message, err := h.adminService.CreateContactMessage(&req)
	if err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(vErrs))
			return
		}
		utils.InternalErrorResponse(c, "Failed to submit message")
		return
	}

	utils.CreatedResponse(c, message)
}
