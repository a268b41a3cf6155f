// internal/services/favorite_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/models"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

func (s *FavoriteService) List(userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := s.db.Where("user_id = ?", userID).
		Preload("Product").
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}
	return favorites, nil
}

// Add bookmarks the product. Adding an already-favorited product is a
// no-op, not an error.
func (s *FavoriteService) Add(userID, productID uuid.UUID) ([]models.Favorite, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	exists, err := s.IsFavorite(userID, productID)
	if err != nil {
		return nil, err
	}

	if !exists {
		favorite := models.Favorite{UserID: userID, ProductID: productID}
		if err := s.db.Create(&favorite).Error; err != nil {
			return nil, fmt.Errorf("failed to add favorite: %w", err)
		}
	}

	return s.List(userID)
}

// Remove deletes the bookmark and reports whether a row existed.
// Callers use the flag to decide on UI feedback.
func (s *FavoriteService) Remove(userID, productID uuid.UUID) (bool, error) {
	result := s.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (s *FavoriteService) IsFavorite(userID, productID uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Favorite{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("database error: %w", err)
	}
	return count > 0, nil
}

func (s *FavoriteService) Count(userID uuid.UUID) (int64, error) {
	var count int64
	if err := s.db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("database error: %w", err)
	}
	return count, nil
}
