package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-store-api/internal/model"
	"go-store-api/internal/repository"
	"go-store-api/internal/ws"
	"go-store-api/pkg/validator"

	"gorm.io/gorm"
)

// StockConfig selects how quantity deltas hit the store.
type StockConfig struct {
	// AtomicUpdates = true applies add/remove as a single conditional
	// UPDATE judged by rows-affected. false reproduces the legacy
	// read-then-write pair, which can lose updates under concurrent
	// removals against the same product.
	AtomicUpdates bool
}

type CreateStockInput struct {
	ProductID       uint `json:"product_id" validate:"required"`
	CurrentQuantity *int `json:"current_quantity" validate:"omitempty,gte=0"`
	MinimumQuantity *int `json:"minimum_quantity" validate:"omitempty,gte=0"`
}

// UpdateStockInput is a typed partial update: only non-nil fields are
// written. Negative quantities are rejected up front instead of being
// written through like the open field-bag this replaces.
type UpdateStockInput struct {
	CurrentQuantity *int `json:"current_quantity" validate:"omitempty,gte=0"`
	MinimumQuantity *int `json:"minimum_quantity" validate:"omitempty,gte=0"`
}

type StockService interface {
	Create(req CreateStockInput) (*model.Stock, error)
	GetByProduct(productID uint) (*model.StockResponse, error)
	List() ([]model.StockResponse, error)
	Update(productID uint, req UpdateStockInput) (*model.Stock, error)
	AddQuantity(productID uint, amount int) (*model.Stock, error)
	RemoveQuantity(productID uint, amount int) (*model.Stock, error)
	Delete(productID uint) error
}

type stockService struct {
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
	cfg         StockConfig
}

func NewStockService(sRepo repository.StockRepository, pRepo repository.ProductRepository, hub *ws.Hub, cfg StockConfig) StockService {
	return &stockService{
		stockRepo:   sRepo,
		productRepo: pRepo,
		wsHub:       hub,
		cfg:         cfg,
	}
}

func (s *stockService) Create(req CreateStockInput) (*model.Stock, error) {
	// 1. Validate input
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidQuantity, errs[0].FailedField, errs[0].Tag)
	}

	// 2. Product must already exist
	exists, err := s.productRepo.Exists(req.ProductID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProductNotFound
	}

	// 3. At most one stock row per product
	if existing, err := s.stockRepo.FindByProduct(req.ProductID); err == nil && existing.ID != 0 {
		return nil, ErrStockExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 4. Missing quantities default to 0
	stock := &model.Stock{ProductID: req.ProductID}
	if req.CurrentQuantity != nil {
		stock.CurrentQuantity = *req.CurrentQuantity
	}
	if req.MinimumQuantity != nil {
		stock.MinimumQuantity = *req.MinimumQuantity
	}

	if err := s.stockRepo.Create(stock); err != nil {
		return nil, err
	}

	s.broadcast("stock_created", stock)
	return stock, nil
}

func (s *stockService) GetByProduct(productID uint) (*model.StockResponse, error) {
	stock, err := s.stockRepo.FindByProduct(productID)
	if err != nil {
		return nil, s.translate(err)
	}
	resp := stock.ToResponse()
	return &resp, nil
}

func (s *stockService) List() ([]model.StockResponse, error) {
	stocks, err := s.stockRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.StockResponse, len(stocks))
	for i := range stocks {
		responses[i] = stocks[i].ToResponse()
	}
	return responses, nil
}

func (s *stockService) Update(productID uint, req UpdateStockInput) (*model.Stock, error) {
	// 1. Validate the provided fields
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidQuantity, errs[0].FailedField, errs[0].Tag)
	}

	// 2. Row must exist
	if _, err := s.stockRepo.FindByProduct(productID); err != nil {
		return nil, s.translate(err)
	}

	// 3. Apply only the fields that were sent
	fields := map[string]interface{}{}
	if req.CurrentQuantity != nil {
		fields["current_quantity"] = *req.CurrentQuantity
	}
	if req.MinimumQuantity != nil {
		fields["minimum_quantity"] = *req.MinimumQuantity
	}
	if len(fields) > 0 {
		if err := s.stockRepo.UpdateFields(productID, fields); err != nil {
			return nil, err
		}
	}

	stock, err := s.stockRepo.FindByProduct(productID)
	if err != nil {
		return nil, s.translate(err)
	}
	return stock, nil
}

func (s *stockService) AddQuantity(productID uint, amount int) (*model.Stock, error) {
	if amount <= 0 {
		return nil, ErrInvalidQuantity
	}

	if s.cfg.AtomicUpdates {
		ok, err := s.stockRepo.AdjustIfAvailable(productID, amount)
		if err != nil {
			return nil, err
		}
		if !ok {
			// A positive delta only misses when the row is absent
			return nil, ErrStockNotFound
		}
	} else {
		// Legacy path: read, compute, write as two store operations
		stock, err := s.stockRepo.FindByProduct(productID)
		if err != nil {
			return nil, s.translate(err)
		}
		if err := s.stockRepo.SetQuantity(productID, stock.CurrentQuantity+amount); err != nil {
			return nil, err
		}
	}

	stock, err := s.stockRepo.FindByProduct(productID)
	if err != nil {
		return nil, s.translate(err)
	}
	s.broadcast("quantity_added", stock)
	return stock, nil
}

func (s *stockService) RemoveQuantity(productID uint, amount int) (*model.Stock, error) {
	if amount <= 0 {
		return nil, ErrInvalidQuantity
	}

	if s.cfg.AtomicUpdates {
		// Existence first, so a miss on the conditional update below can
		// only mean the quantity guard fired
		if _, err := s.stockRepo.FindByProduct(productID); err != nil {
			return nil, s.translate(err)
		}
		ok, err := s.stockRepo.AdjustIfAvailable(productID, -amount)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrInsufficientStock
		}
	} else {
		stock, err := s.stockRepo.FindByProduct(productID)
		if err != nil {
			return nil, s.translate(err)
		}
		newQuantity := stock.CurrentQuantity - amount
		if newQuantity < 0 {
			return nil, ErrInsufficientStock
		}
		if err := s.stockRepo.SetQuantity(productID, newQuantity); err != nil {
			return nil, err
		}
	}

	stock, err := s.stockRepo.FindByProduct(productID)
	if err != nil {
		return nil, s.translate(err)
	}
	s.broadcast("quantity_removed", stock)
	return stock, nil
}

func (s *stockService) Delete(productID uint) error {
	if _, err := s.stockRepo.FindByProduct(productID); err != nil {
		return s.translate(err)
	}
	return s.stockRepo.Delete(productID)
}

func (s *stockService) translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrStockNotFound
	}
	return err
}

func (s *stockService) broadcast(action string, stock *model.Stock) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": action,
			"stock": map[string]interface{}{
				"product_id":       stock.ProductID,
				"current_quantity": stock.CurrentQuantity,
				"minimum_quantity": stock.MinimumQuantity,
			},
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
