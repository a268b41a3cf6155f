// internal/services/product_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/models"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

type ProductServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ProductService
	ctx     context.Context
}

func (s *ProductServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	// nil cache behaves as a permanent miss
	s.service = NewProductService(s.db, nil)
	s.ctx = context.Background()
}

func (s *ProductServiceTestSuite) TestCreateAndGet() {
	desc := "A sturdy mug"
	product, err := s.service.Create(s.ctx, &CreateProductRequest{
		Title:       "Mug",
		Price:       12.50,
		Description: &desc,
		Gallery:     []string{"a.jpg", "b.jpg"},
	})
	s.NoError(err)
	s.NotEqual(uuid.Nil, product.ID)

	fetched, err := s.service.Get(s.ctx, product.ID)
	s.NoError(err)
	s.Equal("Mug", fetched.Title)
	s.Equal(12.50, fetched.Price)
	s.Len([]string(fetched.Gallery), 2)
}

func (s *ProductServiceTestSuite) TestCreateValidation() {
	_, err := s.service.Create(s.ctx, &CreateProductRequest{Title: "Free Mug", Price: 0})
	s.Error(err)
}

func (s *ProductServiceTestSuite) TestGetUnknown() {
	_, err := s.service.Get(s.ctx, uuid.New())
	s.ErrorIs(err, ErrProductNotFound)
}

func (s *ProductServiceTestSuite) TestSearchByTitle() {
	createTestProduct(s.T(), s.db, "Ceramic Mug", 10.00)
	createTestProduct(s.T(), s.db, "Cotton Shirt", 25.00)

	params := ProductSearchParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc", Search: "mug"},
	}

	products, total, err := s.service.Search(s.ctx, params)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal("Ceramic Mug", products[0].Title)
}

func (s *ProductServiceTestSuite) TestSearchByPriceRange() {
	createTestProduct(s.T(), s.db, "Cheap", 5.00)
	createTestProduct(s.T(), s.db, "Mid", 15.00)
	createTestProduct(s.T(), s.db, "Dear", 50.00)

	min, max := 10.0, 20.0
	params := ProductSearchParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 20, Sort: "price", Order: "asc"},
		PriceMin:         &min,
		PriceMax:         &max,
	}

	products, total, err := s.service.Search(s.ctx, params)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal("Mid", products[0].Title)
}

func (s *ProductServiceTestSuite) TestSearchPagination() {
	createTestProducts(s.T(), s.db, 5)

	params := ProductSearchParams{
		PaginationParams: utils.PaginationParams{Page: 2, Limit: 2, Sort: "title", Order: "asc"},
	}

	products, total, err := s.service.Search(s.ctx, params)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(products, 2)
}

func (s *ProductServiceTestSuite) TestSearchDefaultFirstPage() {
	createTestProducts(s.T(), s.db, 3)

	params := ProductSearchParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"},
	}
	s.True(defaultCatalogPage(params))

	products, total, err := s.service.Search(s.ctx, params)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(products, 3)
}

func (s *ProductServiceTestSuite) TestDefaultCatalogPagePredicate() {
	base := ProductSearchParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"},
	}
	s.True(defaultCatalogPage(base))

	// Any filter, page, sort, or size deviation must bypass the cache
	searched := base
	searched.Search = "mug"
	s.False(defaultCatalogPage(searched))

	paged := base
	paged.Page = 2
	s.False(defaultCatalogPage(paged))

	resized := base
	resized.Limit = 50
	s.False(defaultCatalogPage(resized))

	sorted := base
	sorted.Sort = "price"
	s.False(defaultCatalogPage(sorted))

	min := 5.0
	priced := base
	priced.PriceMin = &min
	s.False(defaultCatalogPage(priced))
}

func (s *ProductServiceTestSuite) TestUpdatePartial() {
	product := createTestProduct(s.T(), s.db, "Mug", 10.00)

	_, err := s.service.Update(s.ctx, product.ID, &UpdateProductRequest{Price: 11.00})
	s.NoError(err)

	fetched, err := s.service.Get(s.ctx, product.ID)
	s.NoError(err)
	s.Equal(11.00, fetched.Price)
	// Untouched fields survive
	s.Equal("Mug", fetched.Title)
}

func (s *ProductServiceTestSuite) TestUpdateUnknown() {
	_, err := s.service.Update(s.ctx, uuid.New(), &UpdateProductRequest{Price: 11.00})
	s.ErrorIs(err, ErrProductNotFound)
}

func (s *ProductServiceTestSuite) TestDelete() {
	product := createTestProduct(s.T(), s.db, "Mug", 10.00)

	s.NoError(s.service.Delete(s.ctx, product.ID))

	_, err := s.service.Get(s.ctx, product.ID)
	s.ErrorIs(err, ErrProductNotFound)

	// Soft delete: the row survives for order history
	var count int64
	s.db.Unscoped().Model(&models.Product{}).Where("id = ?", product.ID).Count(&count)
	s.Equal(int64(1), count)
}

func (s *ProductServiceTestSuite) TestDeleteUnknown() {
	err := s.service.Delete(s.ctx, uuid.New())
	s.ErrorIs(err, ErrProductNotFound)
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
