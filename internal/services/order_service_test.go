// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/models"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

type OrderServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	service     *OrderService
	cartService *CartService
	user        *models.User
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.service = NewOrderService(s.db)
	s.cartService = NewCartService(s.db)
	s.user = createTestUser(s.T(), s.db, "orders@example.com")
}

func (s *OrderServiceTestSuite) TestCreateFromEmptyCartFails() {
	_, err := s.service.Create(s.user.ID, nil)
	s.ErrorIs(err, ErrEmptyCart)

	// Nothing written
	var count int64
	s.db.Model(&models.Order{}).Count(&count)
	s.Equal(int64(0), count)
}

func (s *OrderServiceTestSuite) TestCreateSnapshotsCartAndClearsIt() {
	mug := createTestProduct(s.T(), s.db, "Mug", 10.00)
	shirt := createTestProduct(s.T(), s.db, "Shirt", 12.50)

	_, err := s.cartService.AddItem(s.user.ID, mug.ID)
	s.NoError(err)
	_, err = s.cartService.AddItem(s.user.ID, mug.ID)
	s.NoError(err)
	_, err = s.cartService.AddItem(s.user.ID, shirt.ID)
	s.NoError(err)

	order, err := s.service.Create(s.user.ID, nil)
	s.NoError(err)
	s.Equal(models.OrderStatusPending, order.Status)
	s.Len(order.Items, 2)
	s.NotNil(order.TotalPrice)
	s.Equal(32.50, *order.TotalPrice)

	// Cart is emptied by the same commit
	cart, err := s.cartService.GetCart(s.user.ID)
	s.NoError(err)
	s.Empty(cart.Items)
}

func (s *OrderServiceTestSuite) TestCreateWithAddress() {
	product := createTestProduct(s.T(), s.db, "Mug", 10.00)
	_, err := s.cartService.AddItem(s.user.ID, product.ID)
	s.NoError(err)

	address := &models.Address{
		UserID:      s.user.ID,
		FullName:    "Jane Doe",
		Street:      "1 Main Street",
		City:        "Springfield",
		PostalCode:  "12345",
		PhoneNumber: "+1-555-0100",
	}
	s.NoError(s.db.Create(address).Error)

	order, err := s.service.Create(s.user.ID, &address.ID)
	s.NoError(err)
	s.NotNil(order.AddressID)
	s.Equal(address.ID, *order.AddressID)
}

func (s *OrderServiceTestSuite) TestCreateWithForeignAddressFails() {
	other := createTestUser(s.T(), s.db, "other@example.com")
	product := createTestProduct(s.T(), s.db, "Mug", 10.00)
	_, err := s.cartService.AddItem(s.user.ID, product.ID)
	s.NoError(err)

	address := &models.Address{
		UserID:      other.ID,
		FullName:    "Someone Else",
		Street:      "2 Side Street",
		City:        "Springfield",
		PostalCode:  "12345",
		PhoneNumber: "+1-555-0200",
	}
	s.NoError(s.db.Create(address).Error)

	_, err = s.service.Create(s.user.ID, &address.ID)
	s.Error(err)

	// The failed checkout must not consume the cart
	cart, err := s.cartService.GetCart(s.user.ID)
	s.NoError(err)
	s.Len(cart.Items, 1)
}

func (s *OrderServiceTestSuite) TestItemPriceSurvivesCatalogChange() {
	product := createTestProduct(s.T(), s.db, "Mug", 10.00)
	_, err := s.cartService.AddItem(s.user.ID, product.ID)
	s.NoError(err)

	order, err := s.service.Create(s.user.ID, nil)
	s.NoError(err)

	// Raise the catalog price after the sale
	s.NoError(s.db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price", 99.99).Error)

	reloaded, err := s.service.Get(order.ID, s.user.ID)
	s.NoError(err)
	s.Equal(10.00, reloaded.Items[0].Price)
}

func (s *OrderServiceTestSuite) TestGetIsOwnerScoped() {
	other := createTestUser(s.T(), s.db, "other@example.com")
	product := createTestProduct(s.T(), s.db, "Mug", 10.00)
	_, err := s.cartService.AddItem(s.user.ID, product.ID)
	s.NoError(err)

	order, err := s.service.Create(s.user.ID, nil)
	s.NoError(err)

	_, err = s.service.Get(order.ID, other.ID)
	s.ErrorIs(err, ErrOrderNotFound)
}

func (s *OrderServiceTestSuite) TestListForUser() {
	product := createTestProduct(s.T(), s.db, "Mug", 10.00)

	for i := 0; i < 2; i++ {
		_, err := s.cartService.AddItem(s.user.ID, product.ID)
		s.NoError(err)
		_, err = s.service.Create(s.user.ID, nil)
		s.NoError(err)
	}

	orders, err := s.service.ListForUser(s.user.ID)
	s.NoError(err)
	s.Len(orders, 2)
	s.Len(orders[0].Items, 1)
}

func (s *OrderServiceTestSuite) TestUpdateStatus() {
	product := createTestProduct(s.T(), s.db, "Mug", 10.00)
	_, err := s.cartService.AddItem(s.user.ID, product.ID)
	s.NoError(err)

	order, err := s.service.Create(s.user.ID, nil)
	s.NoError(err)

	// Any known status is reachable from any other, including backwards
	for _, status := range []models.OrderStatus{
		models.OrderStatusShipped,
		models.OrderStatusConfirmed,
		models.OrderStatusCancelled,
		models.OrderStatusPending,
	} {
		updated, err := s.service.UpdateStatus(order.ID, status)
		s.NoError(err)
		s.Equal(status, updated.Status)
	}
}

func (s *OrderServiceTestSuite) TestUpdateStatusLeavesItemsUntouched() {
	product := createTestProduct(s.T(), s.db, "Mug", 10.00)
	_, err := s.cartService.AddItem(s.user.ID, product.ID)
	s.NoError(err)

	order, err := s.service.Create(s.user.ID, nil)
	s.NoError(err)

	updated, err := s.service.UpdateStatus(order.ID, models.OrderStatusShipped)
	s.NoError(err)
	s.Len(updated.Items, 1)
	s.Equal(10.00, updated.Items[0].Price)
	s.Equal(order.Items[0].ID, updated.Items[0].ID)
}

func (s *OrderServiceTestSuite) TestUpdateStatusRejectsUnknown() {
	_, err := s.service.UpdateStatus(uuid.New(), models.OrderStatus("delivered-by-drone"))
	s.Error(err)
	s.Contains(err.Error(), "unknown order status")
}

func (s *OrderServiceTestSuite) TestUpdateStatusUnknownOrder() {
	_, err := s.service.UpdateStatus(uuid.New(), models.OrderStatusShipped)
	s.ErrorIs(err, ErrOrderNotFound)
}

func (s *OrderServiceTestSuite) TestListAll() {
	other := createTestUser(s.T(), s.db, "other@example.com")
	product := createTestProduct(s.T(), s.db, "Mug", 10.00)

	for _, u := range []*models.User{s.user, other} {
		_, err := s.cartService.AddItem(u.ID, product.ID)
		s.NoError(err)
		_, err = s.service.Create(u.ID, nil)
		s.NoError(err)
	}

	orders, total, err := s.service.ListAll(utils.PaginationParams{
		Page: 1, Limit: 20, Sort: "created_at", Order: "desc",
	})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(orders, 2)
	s.NotEmpty(orders[0].User.Email)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
