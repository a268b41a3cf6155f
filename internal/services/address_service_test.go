// internal/services/address_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/models"
)

type AddressServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AddressService
	user    *models.User
}

func (s *AddressServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.service = NewAddressService(s.db)
	s.user = createTestUser(s.T(), s.db, "addresses@example.com")
}

func validAddressRequest() *AddressRequest {
	return &AddressRequest{
		FullName:    "Jane Doe",
		Street:      "1 Main Street",
		City:        "Springfield",
		PostalCode:  "12345",
		PhoneNumber: "+1-555-0100",
	}
}

func (s *AddressServiceTestSuite) TestAdd() {
	addresses, err := s.service.Add(s.user.ID, validAddressRequest())
	s.NoError(err)
	s.Len(addresses, 1)
	s.Equal("Jane Doe", addresses[0].FullName)
	s.Equal(s.user.ID, addresses[0].UserID)
}

func (s *AddressServiceTestSuite) TestAddValidation() {
	req := validAddressRequest()
	req.Street = ""

	_, err := s.service.Add(s.user.ID, req)
	s.Error(err)
}

func (s *AddressServiceTestSuite) TestUpdate() {
	addresses, err := s.service.Add(s.user.ID, validAddressRequest())
	s.NoError(err)

	req := validAddressRequest()
	req.City = "Shelbyville"

	updated, err := s.service.Update(s.user.ID, addresses[0].ID, req)
	s.NoError(err)
	s.Equal("Shelbyville", updated[0].City)
}

func (s *AddressServiceTestSuite) TestUpdateUnknownAddress() {
	_, err := s.service.Update(s.user.ID, uuid.New(), validAddressRequest())
	s.Error(err)
	s.Contains(err.Error(), "address not found")
}

func (s *AddressServiceTestSuite) TestDelete() {
	addresses, err := s.service.Add(s.user.ID, validAddressRequest())
	s.NoError(err)

	remaining, err := s.service.Delete(s.user.ID, addresses[0].ID)
	s.NoError(err)
	s.Empty(remaining)
}

func (s *AddressServiceTestSuite) TestDeleteAddressReferencedByOrder() {
	cartService := NewCartService(s.db)
	orderService := NewOrderService(s.db)

	product := createTestProduct(s.T(), s.db, "Mug", 10.00)
	_, err := cartService.AddItem(s.user.ID, product.ID)
	s.NoError(err)

	addresses, err := s.service.Add(s.user.ID, validAddressRequest())
	s.NoError(err)

	order, err := orderService.Create(s.user.ID, &addresses[0].ID)
	s.NoError(err)

	// Orders reference but do not own the address; the delete succeeds
	// and the order keeps its items with the reference cleared
	remaining, err := s.service.Delete(s.user.ID, addresses[0].ID)
	s.NoError(err)
	s.Empty(remaining)

	reloaded, err := orderService.Get(order.ID, s.user.ID)
	s.NoError(err)
	s.Nil(reloaded.AddressID)
	s.Len(reloaded.Items, 1)
}

func (s *AddressServiceTestSuite) TestAddressesAreUserScoped() {
	other := createTestUser(s.T(), s.db, "other@example.com")

	addresses, err := s.service.Add(s.user.ID, validAddressRequest())
	s.NoError(err)

	// Another user cannot see, update, or delete the address
	list, err := s.service.List(other.ID)
	s.NoError(err)
	s.Empty(list)

	_, err = s.service.Update(other.ID, addresses[0].ID, validAddressRequest())
	s.Error(err)
	s.Contains(err.Error(), "address not found")

	_, err = s.service.Delete(other.ID, addresses[0].ID)
	s.Error(err)
	s.Contains(err.Error(), "address not found")

	// The owner still holds the untouched address
	list, err = s.service.List(s.user.ID)
	s.NoError(err)
	s.Len(list, 1)
}

func TestAddressServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AddressServiceTestSuite))
}
