// internal/services/testutil_test.go
package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/models"
)

var testDBCounter int64

// setupTestDB opens a fresh in-memory database per test so suites never
// share state. Foreign keys are enforced to match Postgres behavior;
// each database gets a unique name so the shared-cache URI stays scoped
// to its own test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Favorite{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
		&models.ContactMessage{},
		&models.AuditLog{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:  "Test User",
		Email: email,
	}
	require.NoError(t, user.SetPassword("Password123"))
	require.NoError(t, db.Create(user).Error)

	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, title string, price float64) *models.Product {
	t.Helper()

	product := &models.Product{
		Title: title,
		Price: price,
	}
	require.NoError(t, db.Create(product).Error)

	return product
}

func createTestProducts(t *testing.T, db *gorm.DB, count int) []*models.Product {
	t.Helper()

	products := make([]*models.Product, 0, count)
	for i := 0; i < count; i++ {
		products = append(products, createTestProduct(t, db, fmt.Sprintf("Product %d", i+1), float64(i+1)*10))
	}
	return products
}
