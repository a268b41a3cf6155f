// internal/services/address_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/models"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

// AddressService is user-scoped CRUD over shipping addresses. Mutations
// return the re-fetched list so callers always hold server state.
type AddressService struct {
	db *gorm.DB
}

type AddressRequest struct {
	FullName    string `json:"full_name" validate:"required,max=100"`
	Street      string `json:"street" validate:"required,max=255"`
	City        string `json:"city" validate:"required,max=100"`
	PostalCode  string `json:"postal_code" validate:"required,max=20"`
	PhoneNumber string `json:"phone_number" validate:"required,max=30"`
}

func NewAddressService(db *gorm.DB) *AddressService {
	return &AddressService{db: db}
}

func (s *AddressService) List(userID uuid.UUID) ([]models.Address, error) {
	var addresses []models.Address
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch addresses: %w", err)
	}
	return addresses, nil
}

func (s *AddressService) Add(userID uuid.UUID, req *AddressRequest) ([]models.Address, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	address := models.Address{
		UserID:      userID,
		FullName:    req.FullName,
		Street:      req.Street,
		City:        req.City,
		PostalCode:  req.PostalCode,
		PhoneNumber: req.PhoneNumber,
	}

	if err := s.db.Create(&address).Error; err != nil {
		return nil, fmt.Errorf("failed to add address: %w", err)
	}

	return s.List(userID)
}

// Update rewrites the address if it belongs to the user; another user's
// address is reported as not found rather than forbidden.
func (s *AddressService) Update(userID, addressID uuid.UUID, req *AddressRequest) ([]models.Address, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	result := s.db.Model(&models.Address{}).
		Where("id = ? AND user_id = ?", addressID, userID).
		Updates(map[string]interface{}{
			"full_name":    req.FullName,
			"street":       req.Street,
			"city":         req.City,
			"postal_code":  req.PostalCode,
			"phone_number": req.PhoneNumber,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errors.New("address not found")
	}

	return s.List(userID)
}

func (s *AddressService) Delete(userID, addressID uuid.UUID) ([]models.Address, error) {
	result := s.db.Where("id = ? AND user_id = ?", addressID, userID).
		Delete(&models.Address{})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errors.New("address not found")
	}

	return s.List(userID)
}

func (s *AddressService) Get(userID, addressID uuid.UUID) (*models.Address, error) {
	var address models.Address
	if err := s.db.Where("id = ? AND user_id = ?", addressID, userID).
		First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("address not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &address, nil
}
