// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/models"
)

// CartService owns the pending selections of a user. Every mutation
// answers with state re-read from the database (re-fetch-after-write),
// so callers never see a locally patched view that the store has not
// confirmed.
type CartService struct {
	db *gorm.DB
}

// Cart is the derived view handed to callers: the lines plus the totals
// recomputed on every read.
type Cart struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice float64           `json:"total_price"`
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

func (s *CartService) GetCart(userID uuid.UUID) (*Cart, error) {
	var items []models.CartItem
	if err := s.db.Where("user_id = ?", userID).
		Preload("Product").
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}

	cart := &Cart{Items: items}
	for _, item := range items {
		cart.TotalItems += item.Quantity
		cart.TotalPrice += item.Product.Price * float64(item.Quantity)
	}

	return cart, nil
}

// AddItem increments the quantity of an existing line for the product,
// or creates a new line with quantity 1.
func (s *CartService) AddItem(userID, productID uuid.UUID) (*Cart, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var item models.CartItem
	err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	switch {
	case err == nil:
		if err := s.db.Model(&item).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", 1)).Error; err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  1,
		}
		if err := s.db.Create(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to create cart item: %w", err)
		}
	default:
		return nil, fmt.Errorf("database error: %w", err)
	}

	return s.GetCart(userID)
}

// RemoveItem deletes the line for the product. A missing line is not an
// error.
func (s *CartService) RemoveItem(userID, productID uuid.UUID) (*Cart, error) {
	if err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error; err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}

	return s.GetCart(userID)
}

// UpdateQuantity sets the line's quantity. Quantities below 1 are a
// silent no-op: no error, no deletion, no state change. A missing line
// is likewise left alone.
func (s *CartService) UpdateQuantity(userID, productID uuid.UUID, quantity int) (*Cart, error) {
	if quantity < 1 {
		return s.GetCart(userID)
	}

	if err := s.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error; err != nil {
		return nil, fmt.Errorf("failed to update quantity: %w", err)
	}

	return s.GetCart(userID)
}

// Clear deletes every line owned by the user.
func (s *CartService) Clear(userID uuid.UUID) error {
	if err := s.db.Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
