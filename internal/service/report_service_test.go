package service

import (
	"testing"

	"go-store-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockReport(t *testing.T) {
	db := newTestDB(t)
	stockRepo := repository.NewStockRepo(db)
	stockSvc := NewStockService(stockRepo, repository.NewProductRepo(db), nil, StockConfig{AtomicUpdates: true})
	reportSvc := NewReportService(stockRepo)

	healthy := seedProduct(t, db, "Healthy Tee", "10.00")
	low := seedProduct(t, db, "Low Tee", "12.00")

	_, err := stockSvc.Create(CreateStockInput{ProductID: healthy.ID, CurrentQuantity: intPtr(20), MinimumQuantity: intPtr(5)})
	require.NoError(t, err)
	_, err = stockSvc.Create(CreateStockInput{ProductID: low.ID, CurrentQuantity: intPtr(2), MinimumQuantity: intPtr(5)})
	require.NoError(t, err)

	report, err := reportSvc.StockReport()
	require.NoError(t, err)

	assert.Equal(t, int64(2), report.TrackedProducts)
	assert.Equal(t, int64(22), report.TotalUnits)
	require.Equal(t, 1, report.LowStockCount)
	assert.Equal(t, "Low Tee", report.LowStock[0].ProductRef.Name)
}
