// internal/handlers/cart.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/services"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get returns the user's cart with recomputed totals
// GET /v1/cart
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	cart, err := h.cartService.GetCart(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch cart")
		return
	}

	utils.SuccessResponse(c, cart)
}

// AddItem adds a product to the cart or bumps its quantity
// POST /v1/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Product ID is required", nil)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	cart, err := h.cartService.AddItem(userID, productID)
	if err != nil {
		if strings.Contains(err.Error(), "product not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "Failed to add item to cart")
		return
	}

	utils.SuccessResponse(c, cart)
}

// UpdateItem sets the quantity of a cart line
// PUT /v1/cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, ok := parseIDParam(c, "productId")
	if !ok {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Quantity is required", nil)
		return
	}

	cart, err := h.cartService.UpdateQuantity(userID, productID, req.Quantity)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to update cart item")
		return
	}

	utils.SuccessResponse(c, cart)
}

// RemoveItem deletes a cart line
// DELETE /v1/cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, ok := parseIDParam(c, "productId")
	if !ok {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	cart, err := h.cartService.RemoveItem(userID, productID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to remove cart item")
		return
	}

	utils.SuccessResponse(c, cart)
}

// Clear empties the cart
// DELETE /v1/cart
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	if err := h.cartService.Clear(userID); err != nil {
		utils.InternalErrorResponse(c, "Failed to clear cart")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Cart cleared"})
}
