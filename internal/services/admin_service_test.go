// internal/services/admin_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

type AdminServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AdminService
}

func (s *AdminServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.service = NewAdminService(s.db)
}

func (s *AdminServiceTestSuite) TestDashboardStats() {
	createTestUser(s.T(), s.db, "one@example.com")
	createTestUser(s.T(), s.db, "two@example.com")
	createTestProducts(s.T(), s.db, 3)

	stats, err := s.service.GetDashboardStats()
	s.NoError(err)
	s.Equal(int64(3), stats.TotalProducts)
	s.Equal(int64(2), stats.TotalUsers)
	s.Equal(int64(0), stats.TotalOrders)
}

func (s *AdminServiceTestSuite) TestGetUsersSearch() {
	createTestUser(s.T(), s.db, "alice@example.com")
	createTestUser(s.T(), s.db, "bob@example.com")

	users, total, err := s.service.GetUsers(utils.PaginationParams{
		Page: 1, Limit: 20, Sort: "created_at", Order: "desc", Search: "alice",
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal("alice@example.com", users[0].Email)
}

func (s *AdminServiceTestSuite) TestContactMessages() {
	message, err := s.service.CreateContactMessage(&ContactMessageRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Shipping question",
		Body:    "Where is my mug?",
	})
	s.NoError(err)
	s.False(message.Read)

	messages, total, err := s.service.GetContactMessages(utils.PaginationParams{
		Page: 1, Limit: 20, Sort: "created_at", Order: "desc",
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal("Shipping question", messages[0].Subject)
}

func (s *AdminServiceTestSuite) TestContactMessageValidation() {
	_, err := s.service.CreateContactMessage(&ContactMessageRequest{
		Name:  "Jane Doe",
		Email: "not-an-email",
		Body:  "Hello",
	})
	s.Error(err)
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
