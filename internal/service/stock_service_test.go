package service

import (
	"sync"
	"testing"

	"go-store-api/internal/model"
	"go-store-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stockModes runs the subtest under both quantity-update strategies; the
// ledger contract is identical for everything but the race window.
func stockModes(t *testing.T, fn func(t *testing.T, svc StockService, db *gorm.DB)) {
	for name, atomic := range map[string]bool{"atomic": true, "legacy": false} {
		t.Run(name, func(t *testing.T) {
			db := newTestDB(t)
			svc := NewStockService(
				repository.NewStockRepo(db),
				repository.NewProductRepo(db),
				nil,
				StockConfig{AtomicUpdates: atomic},
			)
			fn(t, svc, db)
		})
	}
}

func TestCreateStock_DefaultsToZero(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		product := seedProduct(t, db, "Plain Tee", "9.90")

		stock, err := svc.Create(CreateStockInput{ProductID: product.ID})
		require.NoError(t, err)
		assert.Equal(t, 0, stock.CurrentQuantity)
		assert.Equal(t, 0, stock.MinimumQuantity)
	})
}

func TestCreateStock_DuplicateIsConflict(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		product := seedProduct(t, db, "Plain Tee", "9.90")

		_, err := svc.Create(CreateStockInput{ProductID: product.ID})
		require.NoError(t, err)

		_, err = svc.Create(CreateStockInput{ProductID: product.ID})
		assert.ErrorIs(t, err, ErrStockExists)
	})
}

func TestCreateStock_UnknownProduct(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		_, err := svc.Create(CreateStockInput{ProductID: 9999})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestCreateStock_RejectsNegativeQuantities(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		product := seedProduct(t, db, "Plain Tee", "9.90")

		_, err := svc.Create(CreateStockInput{ProductID: product.ID, CurrentQuantity: intPtr(-1)})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestAddRemove_RoundTrip(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		product := seedProduct(t, db, "Plain Tee", "9.90")
		_, err := svc.Create(CreateStockInput{ProductID: product.ID, CurrentQuantity: intPtr(7)})
		require.NoError(t, err)

		_, err = svc.AddQuantity(product.ID, 4)
		require.NoError(t, err)
		stock, err := svc.RemoveQuantity(product.ID, 4)
		require.NoError(t, err)

		assert.Equal(t, 7, stock.CurrentQuantity)
	})
}

func TestRemoveQuantity_InsufficientLeavesQuantityUnchanged(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		product := seedProduct(t, db, "Plain Tee", "9.90")
		_, err := svc.Create(CreateStockInput{ProductID: product.ID, CurrentQuantity: intPtr(3)})
		require.NoError(t, err)

		_, err = svc.RemoveQuantity(product.ID, 4)
		assert.ErrorIs(t, err, ErrInsufficientStock)

		resp, err := svc.GetByProduct(product.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, resp.CurrentQuantity)
	})
}

func TestRemoveQuantity_NeverNegativeSequentially(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		product := seedProduct(t, db, "Plain Tee", "9.90")
		_, err := svc.Create(CreateStockInput{ProductID: product.ID, CurrentQuantity: intPtr(10)})
		require.NoError(t, err)

		for _, amount := range []int{3, 3, 3, 3, 3} {
			svc.RemoveQuantity(product.ID, amount)

			resp, err := svc.GetByProduct(product.ID)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, resp.CurrentQuantity, 0)
		}
	})
}

func TestQuantityOps_RejectNonPositiveAmounts(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		product := seedProduct(t, db, "Plain Tee", "9.90")
		_, err := svc.Create(CreateStockInput{ProductID: product.ID, CurrentQuantity: intPtr(5)})
		require.NoError(t, err)

		for _, amount := range []int{0, -2} {
			_, err := svc.AddQuantity(product.ID, amount)
			assert.ErrorIs(t, err, ErrInvalidQuantity)
			_, err = svc.RemoveQuantity(product.ID, amount)
			assert.ErrorIs(t, err, ErrInvalidQuantity)
		}
	})
}

func TestQuantityOps_StockNotFound(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		product := seedProduct(t, db, "Plain Tee", "9.90")

		_, err := svc.AddQuantity(product.ID, 1)
		assert.ErrorIs(t, err, ErrStockNotFound)
		_, err = svc.RemoveQuantity(product.ID, 1)
		assert.ErrorIs(t, err, ErrStockNotFound)
	})
}

// The scenario from the ledger's acceptance checklist: a T-Shirt priced
// 19.99 tracked from 10 units through an over-withdrawal to exact drain.
func TestStockLifecycleScenario(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		product := seedProduct(t, db, "T-Shirt", "19.99")

		_, err := svc.Create(CreateStockInput{
			ProductID:       product.ID,
			CurrentQuantity: intPtr(10),
			MinimumQuantity: intPtr(2),
		})
		require.NoError(t, err)

		stock, err := svc.AddQuantity(product.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, 15, stock.CurrentQuantity)

		_, err = svc.RemoveQuantity(product.ID, 20)
		assert.ErrorIs(t, err, ErrInsufficientStock)

		resp, err := svc.GetByProduct(product.ID)
		require.NoError(t, err)
		assert.Equal(t, 15, resp.CurrentQuantity)

		stock, err = svc.RemoveQuantity(product.ID, 15)
		require.NoError(t, err)
		assert.Equal(t, 0, stock.CurrentQuantity)
	})
}

func TestGetByProduct_JoinsProductProjection(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		product := seedProduct(t, db, "T-Shirt", "19.99")
		_, err := svc.Create(CreateStockInput{ProductID: product.ID, CurrentQuantity: intPtr(2)})
		require.NoError(t, err)

		resp, err := svc.GetByProduct(product.ID)
		require.NoError(t, err)
		assert.Equal(t, product.ID, resp.ProductRef.ID)
		assert.Equal(t, "T-Shirt", resp.ProductRef.Name)
		assert.Equal(t, "basic", resp.ProductRef.Model)
		assert.True(t, resp.ProductRef.Price.Equal(product.Price))
	})
}

func TestGetByProduct_NotFound(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		_, err := svc.GetByProduct(123)
		assert.ErrorIs(t, err, ErrStockNotFound)
	})
}

func TestListStock(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		first := seedProduct(t, db, "Tee A", "5.00")
		second := seedProduct(t, db, "Tee B", "6.00")
		_, err := svc.Create(CreateStockInput{ProductID: first.ID, CurrentQuantity: intPtr(1)})
		require.NoError(t, err)
		_, err = svc.Create(CreateStockInput{ProductID: second.ID, CurrentQuantity: intPtr(2)})
		require.NoError(t, err)

		stocks, err := svc.List()
		require.NoError(t, err)
		require.Len(t, stocks, 2)
		assert.Equal(t, "Tee A", stocks[0].ProductRef.Name)
		assert.Equal(t, "Tee B", stocks[1].ProductRef.Name)
	})
}

func TestUpdateStock_TypedPartialUpdate(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		product := seedProduct(t, db, "Plain Tee", "9.90")
		_, err := svc.Create(CreateStockInput{
			ProductID:       product.ID,
			CurrentQuantity: intPtr(8),
			MinimumQuantity: intPtr(1),
		})
		require.NoError(t, err)

		// Only the minimum changes; the quantity stays untouched
		stock, err := svc.Update(product.ID, UpdateStockInput{MinimumQuantity: intPtr(3)})
		require.NoError(t, err)
		assert.Equal(t, 8, stock.CurrentQuantity)
		assert.Equal(t, 3, stock.MinimumQuantity)

		// Negative values cannot sneak in through the update path
		_, err = svc.Update(product.ID, UpdateStockInput{CurrentQuantity: intPtr(-5)})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestUpdateStock_NotFound(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		_, err := svc.Update(42, UpdateStockInput{MinimumQuantity: intPtr(1)})
		assert.ErrorIs(t, err, ErrStockNotFound)
	})
}

func TestDeleteStock(t *testing.T) {
	stockModes(t, func(t *testing.T, svc StockService, db *gorm.DB) {
		product := seedProduct(t, db, "Plain Tee", "9.90")

		// Nothing to delete yet
		assert.ErrorIs(t, svc.Delete(product.ID), ErrStockNotFound)

		_, err := svc.Create(CreateStockInput{ProductID: product.ID})
		require.NoError(t, err)
		require.NoError(t, svc.Delete(product.ID))

		_, err = svc.GetByProduct(product.ID)
		assert.ErrorIs(t, err, ErrStockNotFound)

		// The product can be tracked again after the row is gone
		_, err = svc.Create(CreateStockInput{ProductID: product.ID})
		assert.NoError(t, err)
	})
}

// Two exact-drain removals racing for the same five units: the conditional
// update guarantees a single winner regardless of interleaving.
func TestConcurrentExactDrain_AtomicMode(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService(
		repository.NewStockRepo(db),
		repository.NewProductRepo(db),
		nil,
		StockConfig{AtomicUpdates: true},
	)

	product := seedProduct(t, db, "Plain Tee", "9.90")
	_, err := svc.Create(CreateStockInput{ProductID: product.ID, CurrentQuantity: intPtr(5)})
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RemoveQuantity(product.ID, 5)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		if err == nil {
			succeeded++
		} else if assert.ErrorIs(t, err, ErrInsufficientStock) {
			rejected++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)

	resp, err := svc.GetByProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.CurrentQuantity)
}

func TestStockTableName(t *testing.T) {
	assert.Equal(t, "stocks", model.Stock{}.TableName())
}
