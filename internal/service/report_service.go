package service

import (
	"go-store-api/internal/model"
	"go-store-api/internal/repository"
)

// StockReport is the aggregate overview for the admin dashboard.
type StockReport struct {
	TrackedProducts int64                 `json:"tracked_products"`
	TotalUnits      int64                 `json:"total_units"`
	LowStockCount   int                   `json:"low_stock_count"`
	LowStock        []model.StockResponse `json:"low_stock"`
}

type ReportService interface {
	StockReport() (*StockReport, error)
}

type reportService struct {
	stockRepo repository.StockRepository
}

func NewReportService(sRepo repository.StockRepository) ReportService {
	return &reportService{stockRepo: sRepo}
}

func (s *reportService) StockReport() (*StockReport, error) {
	tracked, err := s.stockRepo.CountTracked()
	if err != nil {
		return nil, err
	}

	units, err := s.stockRepo.TotalUnits()
	if err != nil {
		return nil, err
	}

	// Items at or below their advisory minimum threshold
	low, err := s.stockRepo.FindBelowMinimum()
	if err != nil {
		return nil, err
	}
	lowResponses := make([]model.StockResponse, len(low))
	for i := range low {
		lowResponses[i] = low[i].ToResponse()
	}

	return &StockReport{
		TrackedProducts: tracked,
		TotalUnits:      units,
		LowStockCount:   len(low),
		LowStock:        lowResponses,
	}, nil
}
