// internal/handlers/favorite.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/services"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// List returns the user's favorites, newest first
// GET /v1/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	favorites, err := h.favoriteService.List(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch favorites")
		return
	}

	utils.SuccessResponse(c, favorites)
}

// Add bookmarks a product
// POST /v1/favorites
func (h *FavoriteHandler) Add(c *gin.Context) {
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

	favorites, err := h.favoriteService.Add(userID, productID)
	if err != nil {
		if strings.Contains(err.Error(), "product not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "Failed to add favorite")
		return
	}

	utils.SuccessResponse(c, favorites)
}

// Remove deletes the bookmark. The response reports whether it existed.
// DELETE /v1/favorites/:productId
func (h *FavoriteHandler) Remove(c *gin.Context) {
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

	existed, err := h.favoriteService.Remove(userID, productID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to remove favorite")
		return
	}

	utils.SuccessResponse(c, gin.H{"removed": existed})
}
