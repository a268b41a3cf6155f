// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/config"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())

	utils.SetJWTSecret("test-secret")
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
	}
	s.service = NewAuthService(s.db, cfg)
}

func (s *AuthServiceTestSuite) TestRegister() {
	response, err := s.service.Register(&RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "Password123",
	})
	s.NoError(err)
	s.NotEmpty(response.AccessToken)
	s.NotEmpty(response.RefreshToken)
	s.Equal("Bearer", response.TokenType)
	s.Equal("jane@example.com", response.User.Email)
	s.False(response.User.IsAdmin)
}

func (s *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	req := &RegisterRequest{Name: "Jane Doe", Email: "jane@example.com", Password: "Password123"}

	_, err := s.service.Register(req)
	s.NoError(err)

	_, err = s.service.Register(req)
	s.Error(err)
	s.Contains(err.Error(), "already exists")
}

func (s *AuthServiceTestSuite) TestRegisterWeakPassword() {
	_, err := s.service.Register(&RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password",
	})
	s.Error(err)
}

func (s *AuthServiceTestSuite) TestLogin() {
	_, err := s.service.Register(&RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "Password123",
	})
	s.NoError(err)

	response, err := s.service.Login(&LoginRequest{
		Email:    "jane@example.com",
		Password: "Password123",
	})
	s.NoError(err)
	s.NotEmpty(response.AccessToken)
	s.NotNil(response.User.LastLoginAt)
}

func (s *AuthServiceTestSuite) TestLoginWrongPassword() {
	_, err := s.service.Register(&RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "Password123",
	})
	s.NoError(err)

	_, err = s.service.Login(&LoginRequest{
		Email:    "jane@example.com",
		Password: "WrongPassword1",
	})
	s.Error(err)
	s.Contains(err.Error(), "invalid email or password")
}

func (s *AuthServiceTestSuite) TestLoginUnknownEmail() {
	_, err := s.service.Login(&LoginRequest{
		Email:    "nobody@example.com",
		Password: "Password123",
	})
	s.Error(err)
	// Unknown email and bad password are indistinguishable
	s.Contains(err.Error(), "invalid email or password")
}

func (s *AuthServiceTestSuite) TestRefreshToken() {
	registered, err := s.service.Register(&RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "Password123",
	})
	s.NoError(err)

	response, err := s.service.RefreshToken(registered.RefreshToken)
	s.NoError(err)
	s.NotEmpty(response.AccessToken)
	s.Equal(registered.User.ID, response.User.ID)
}

func (s *AuthServiceTestSuite) TestRefreshTokenInvalid() {
	_, err := s.service.RefreshToken("not-a-token")
	s.Error(err)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
