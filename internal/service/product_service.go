package service

import (
	"errors"
	"fmt"

	"go-store-api/internal/model"
	"go-store-api/internal/repository"
	"go-store-api/pkg/validator"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	Model       string            `json:"model" validate:"required"`
	Category    model.Category    `json:"category" validate:"required,oneof=T-Shirts Pants Dresses Shoes Accessories Jackets Blouses Shorts Underwear Other"`
	Brand       string            `json:"brand" validate:"required"`
	Specs       datatypes.JSONMap `json:"specs"`
	Price       decimal.Decimal   `json:"price"`
	ImageURL    string            `json:"image_url"`
	Active      *bool             `json:"active"`
}

// UpdateProductInput carries PATCH semantics: only non-nil fields are written.
type UpdateProductInput struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Model       *string           `json:"model"`
	Category    *model.Category   `json:"category" validate:"omitempty,oneof=T-Shirts Pants Dresses Shoes Accessories Jackets Blouses Shorts Underwear Other"`
	Brand       *string           `json:"brand"`
	Specs       datatypes.JSONMap `json:"specs"`
	Price       *decimal.Decimal  `json:"price"`
	ImageURL    *string           `json:"image_url"`
	Active      *bool             `json:"active"`
}

type ProductService interface {
	Create(req CreateProductInput) (*model.Product, error)
	List() ([]model.Product, error)
	GetByName(name string) (*model.Product, error)
	UpdatePartial(id uint, req UpdateProductInput) (*model.Product, error)
	UpdateFull(id uint, req CreateProductInput) (*model.Product, error)
	Delete(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

func NewProductService(pRepo repository.ProductRepository, sRepo repository.StockRepository) ProductService {
	return &productService{
		productRepo: pRepo,
		stockRepo:   sRepo,
	}
}

// validateRequired covers create and full update: name, model, price,
// category and brand are mandatory, price must be positive.
func validateRequired(req *CreateProductInput) error {
	if req.Category == "" {
		req.Category = model.CategoryOther
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}
	if !req.Price.IsPositive() {
		return errors.New("name, model, price, category and brand are required")
	}
	return nil
}

func (s *productService) Create(req CreateProductInput) (*model.Product, error) {
	if err := validateRequired(&req); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Model:       req.Model,
		Category:    req.Category,
		Brand:       req.Brand,
		Specs:       req.Specs,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Active:      active,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) List() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) GetByName(name string) (*model.Product, error) {
	product, err := s.productRepo.FindByName(name)
	if err != nil {
		return nil, s.translate(err)
	}
	return product, nil
}

func (s *productService) UpdatePartial(id uint, req UpdateProductInput) (*model.Product, error) {
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}

	if _, err := s.productRepo.FindByID(id); err != nil {
		return nil, s.translate(err)
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Model != nil {
		fields["model"] = *req.Model
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Brand != nil {
		fields["brand"] = *req.Brand
	}
	if req.Specs != nil {
		fields["specs"] = req.Specs
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, errors.New("price must not be negative")
		}
		fields["price"] = *req.Price
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	if len(fields) > 0 {
		if err := s.productRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, s.translate(err)
	}
	return product, nil
}

func (s *productService) UpdateFull(id uint, req CreateProductInput) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, s.translate(err)
	}

	if err := validateRequired(&req); err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Model = req.Model
	product.Category = req.Category
	product.Brand = req.Brand
	product.Specs = req.Specs
	product.Price = req.Price
	product.ImageURL = req.ImageURL
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(id uint) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return s.translate(err)
	}

	// Refuse to orphan a live stock row; the ledger must be deleted first
	if _, err := s.stockRepo.FindByProduct(id); err == nil {
		return ErrProductHasStock
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.productRepo.Delete(id)
}

func (s *productService) translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return err
}
