// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/database"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/models"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

// OrderService converts a cart snapshot into a persisted order. The
// order row, its items, and the cart clear commit in one transaction:
// the cart is emptied if and only if the whole checkout succeeds.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Create places an order from the user's current cart. Each order item
// copies the line quantity and the product's current price; that price
// is the immutable sale price from then on, regardless of later catalog
// changes.
func (s *OrderService) Create(userID uuid.UUID, addressID *uuid.UUID) (*models.Order, error) {
	var order models.Order

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("user_id = ?", userID).
			Preload("Product").
			Find(&items).Error; err != nil {
			return fmt.Errorf("failed to fetch cart: %w", err)
		}

		if len(items) == 0 {
			return ErrEmptyCart
		}

		if addressID != nil {
			var address models.Address
			if err := tx.Where("id = ? AND user_id = ?", *addressID, userID).
				First(&address).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.New("address not found")
				}
				return fmt.Errorf("database error: %w", err)
			}
		}

		var total float64
		for _, item := range items {
			total += item.Product.Price * float64(item.Quantity)
		}

		order = models.Order{
			UserID:     userID,
			AddressID:  addressID,
			Status:     models.OrderStatusPending,
			TotalPrice: &total,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.Price,
			})
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}

		if err := tx.Where("user_id = ?", userID).
			Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// Reload with relationships
	if err := s.db.Preload("Address").Preload("Items").Preload("Items.Product").
		First(&order, "id = ?", order.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	return &order, nil
}

// ListForUser returns every order owned by the user, newest first, with
// address, items, and item products embedded. No pagination: the order
// history is a single unbounded call.
func (s *OrderService) ListForUser(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("user_id = ?", userID).
		Preload("Address").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) Get(orderID, userID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Address").
		Preload("Items").
		Preload("Items.Product").
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

// ListAll is the admin view: paginated, newest first, with the owning
// user embedded so the back-office can show customer emails.
func (s *OrderService) ListAll(params utils.PaginationParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "status", "total_price"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.
		Preload("User").
		Preload("Address").
		Preload("Items").
		Preload("Items.Product").
		Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

// UpdateStatus sets the order status directly. Any known status may be
// set from any other; the storefront performs no transition validation.
func (s *OrderService) UpdateStatus(orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("unknown order status %q", status)
	}

	result := s.db.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrOrderNotFound
	}

	var order models.Order
	if err := s.db.Preload("User").Preload("Address").Preload("Items").Preload("Items.Product").
		First(&order, "id = ?", orderID).Error; err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	return &order, nil
}
