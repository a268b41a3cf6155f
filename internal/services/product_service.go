// internal/services/product_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/models"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	db    *gorm.DB
	cache *CacheService
}

type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Gallery     []string `json:"gallery,omitempty"`
}

type UpdateProductRequest struct {
	Title       string   `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Price       float64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Gallery     []string `json:"gallery,omitempty"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	PriceMin *float64 `json:"price_min,omitempty"`
	PriceMax *float64 `json:"price_max,omitempty"`
}

func NewProductService(db *gorm.DB, cache *CacheService) *ProductService {
	return &ProductService{db: db, cache: cache}
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	cacheKey := s.cache.Key("product", id)
	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		var product models.Product
		if err := json.Unmarshal([]byte(cached), &product); err == nil {
			return &product, nil
		}
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if encoded, err := json.Marshal(product); err == nil {
		s.cache.Set(ctx, cacheKey, string(encoded))
	}

	return &product, nil
}

const defaultCatalogLimit = 20

// catalogPage is the cached form of a product listing: rows plus the
// total count the pagination meta is derived from.
type catalogPage struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
}

// defaultCatalogPage reports whether params describe the storefront's
// landing listing: first page, default size and sort, no filters. That
// is the only list read hot enough to cache, and the only one whose key
// the invalidation path can know ahead of time.
func defaultCatalogPage(params ProductSearchParams) bool {
	return params.Search == "" &&
		params.PriceMin == nil && params.PriceMax == nil &&
		params.Page == 1 && params.Limit == defaultCatalogLimit &&
		params.Sort == "created_at" && params.Order == "desc"
}

func (s *ProductService) Search(ctx context.Context, params ProductSearchParams) ([]models.Product, int64, error) {
	cacheable := defaultCatalogPage(params)
	cacheKey := s.cache.Key("products", "first-page")
	if cacheable {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			var page catalogPage
			if err := json.Unmarshal([]byte(cached), &page); err == nil {
				return page.Products, page.Total, nil
			}
		}
	}

	query := s.db.Model(&models.Product{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	if params.PriceMin != nil {
		query = query.Where("price >= ?", *params.PriceMin)
	}

	if params.PriceMax != nil {
		query = query.Where("price <= ?", *params.PriceMax)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "title", "price"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	if cacheable {
		if encoded, err := json.Marshal(catalogPage{Products: products, Total: total}); err == nil {
			s.cache.Set(ctx, cacheKey, string(encoded))
		}
	}

	return products, total, nil
}

func (s *ProductService) Create(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Gallery:     models.StringSlice(req.Gallery),
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.cache.Delete(ctx, s.cache.Key("products", "first-page"))

	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Price > 0 {
		updates["price"] = req.Price
	}
	if req.Description != nil {
		updates["description"] = req.Description
	}
	if req.Image != nil {
		updates["image"] = req.Image
	}
	if req.Gallery != nil {
		updates["gallery"] = models.StringSlice(req.Gallery)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	s.cache.Delete(ctx, s.cache.Key("product", id), s.cache.Key("products", "first-page"))

	return &product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	s.cache.Delete(ctx, s.cache.Key("product", id), s.cache.Key("products", "first-page"))

	return nil
}
