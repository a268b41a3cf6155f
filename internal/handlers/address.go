// internal/handlers/address.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/services"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// List returns the user's saved addresses
// GET /v1/addresses
func (h *AddressHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	addresses, err := h.addressService.List(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch addresses")
		return
	}

	utils.SuccessResponse(c, addresses)
}

// Create saves a new address and returns the updated list
// POST /v1/addresses
func (h *AddressHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	addresses, err := h.addressService.Add(userID, &req)
	if err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(vErrs))
			return
		}
		utils.InternalErrorResponse(c, "Failed to add address")
		return
	}

	utils.CreatedResponse(c, addresses)
}

// Update rewrites an address owned by the user
// PUT /v1/addresses/:id
func (h *AddressHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	addressID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid address ID", nil)
		return
	}

	var req services.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	addresses, err := h.addressService.Update(userID, addressID, &req)
	if err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(vErrs))
			return
		}
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Address")
			return
		}
		utils.InternalErrorResponse(c, "Failed to update address")
		return
	}

	utils.SuccessResponse(c, addresses)
}

// Delete removes an address owned by the user
// DELETE /v1/addresses/:id
func (h *AddressHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	addressID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid address ID", nil)
		return
	}

	addresses, err := h.addressService.Delete(userID, addressID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Address")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete address")
		return
	}

	utils.SuccessResponse(c, addresses)
}
