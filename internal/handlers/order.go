// internal/handlers/order.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/services"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create places an order from the user's cart
// POST /v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req struct {
		AddressID *string `json:"address_id,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	var addressID *uuid.UUID
	if req.AddressID != nil {
		parsed, err := uuid.Parse(*req.AddressID)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid address ID", nil)
			return
		}
		addressID = &parsed
	}

	order, err := h.orderService.Create(userID, addressID)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.BadRequestResponse(c, "Cannot checkout with an empty cart", nil)
			return
		}
		if strings.Contains(err.Error(), "address not found") {
			utils.NotFoundResponse(c, "Address")
			return
		}
		utils.InternalErrorResponse(c, "Failed to create order")
		return
	}

	utils.CreatedResponse(c, order)
}

// List returns the user's order history, newest first
// GET /v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	orders, err := h.orderService.ListForUser(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch orders")
		return
	}

	utils.SuccessResponse(c, orders)
}

// Get returns a single order owned by the user
// GET /v1/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.Get(orderID, userID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.NotFoundResponse(c, "Order")
			return
		}
		utils.InternalErrorResponse(c, "Failed to fetch order")
		return
	}

	utils.SuccessResponse(c, order)
}
