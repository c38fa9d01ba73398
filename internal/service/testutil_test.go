package service

import (
	"testing"

	"go-store-api/internal/model"
	"go-store-api/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. A single
// connection keeps sqlite from handing each goroutine its own empty
// :memory: instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.Stock{}, &model.Order{}, &model.User{}))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price string) *model.Product {
	t.Helper()

	product := &model.Product{
		Name:     name,
		Model:    "basic",
		Category: model.CategoryTShirts,
		Brand:    "Acme",
		Price:    decimal.RequireFromString(price),
		Active:   true,
	}
	require.NoError(t, repository.NewProductRepo(db).Create(product))
	return product
}

func intPtr(v int) *int { return &v }
