// internal/handlers/admin.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/models"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/services"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

type AdminHandler struct {
	adminService *services.AdminService
	orderService *services.OrderService
}

func NewAdminHandler(adminService *services.AdminService, orderService *services.OrderService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		orderService: orderService,
	}
}

// Dashboard returns the back-office headline counts
// GET /v1/admin/dashboard/stats
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch dashboard stats")
		return
	}

	utils.SuccessResponse(c, stats)
}

// Users returns a paginated, searchable user list
// GET /v1/admin/users
func (h *AdminHandler) Users(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.adminService.GetUsers(params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch users")
		return
	}

	result := utils.CreatePaginationResult(users, total, params)
	utils.PaginatedResponse(c, result)
}

// Orders returns every order with the owning user embedded
// GET /v1/admin/orders
func (h *AdminHandler) Orders(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderService.ListAll(params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch orders")
		return
	}

	result := utils.CreatePaginationResult(orders, total, params)
	utils.PaginatedResponse(c, result)
}

// UpdateOrderStatus sets any known status on an order
// PUT /v1/admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Status is required", nil)
		return
	}

	order, err := h.orderService.UpdateStatus(orderID, models.OrderStatus(req.Status))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.NotFoundResponse(c, "Order")
			return
		}
		if strings.Contains(err.Error(), "unknown order status") {
			utils.BadRequestResponse(c, "Unknown order status", nil)
			return
		}
		utils.InternalErrorResponse(c, "Failed to update order status")
		return
	}

	utils.SuccessResponse(c, order)
}

// Messages returns submitted contact messages
// GET /v1/admin/messages
func (h *AdminHandler) Messages(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	messages, total, err := h.adminService.GetContactMessages(params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch messages")
		return
	}

	result := utils.CreatePaginationResult(messages, total, params)
	utils.PaginatedResponse(c, result)
}
