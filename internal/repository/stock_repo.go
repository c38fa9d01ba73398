package repository

import (
	"go-store-api/internal/model"

	"gorm.io/gorm"
)

type StockRepository interface {
	Create(stock *model.Stock) error
	FindAll() ([]model.Stock, error)
	FindByProduct(productID uint) (*model.Stock, error)
	SetQuantity(productID uint, newQuantity int) error
	UpdateFields(productID uint, fields map[string]interface{}) error
	Delete(productID uint) error

	// AdjustIfAvailable applies the delta in a single conditional UPDATE.
	// Returns false when the row is missing or the decrement would go
	// negative, without modifying anything.
	AdjustIfAvailable(productID uint, delta int) (bool, error)

	// Report aggregates
	CountTracked() (int64, error)
	TotalUnits() (int64, error)
	FindBelowMinimum() ([]model.Stock, error)
}

type stockRepo struct {
	db *gorm.DB
}

func NewStockRepo(db *gorm.DB) StockRepository {
	return &stockRepo{db}
}

func (r *stockRepo) Create(stock *model.Stock) error {
	return r.db.Create(stock).Error
}

func (r *stockRepo) FindAll() ([]model.Stock, error) {
	var stocks []model.Stock
	err := r.db.Preload("Product").Find(&stocks).Error
	return stocks, err
}

func (r *stockRepo) FindByProduct(productID uint) (*model.Stock, error) {
	var stock model.Stock
	err := r.db.Preload("Product").First(&stock, "product_id = ?", productID).Error
	return &stock, err
}

func (r *stockRepo) SetQuantity(productID uint, newQuantity int) error {
	return r.db.Model(&model.Stock{}).
		Where("product_id = ?", productID).
		Update("current_quantity", newQuantity).Error
}

func (r *stockRepo) UpdateFields(productID uint, fields map[string]interface{}) error {
	return r.db.Model(&model.Stock{}).
		Where("product_id = ?", productID).
		Updates(fields).Error
}

func (r *stockRepo) Delete(productID uint) error {
	return r.db.Unscoped().Delete(&model.Stock{}, "product_id = ?", productID).Error
}

func (r *stockRepo) AdjustIfAvailable(productID uint, delta int) (bool, error) {
	tx := r.db.Model(&model.Stock{}).
		Where("product_id = ? AND current_quantity + ? >= 0", productID, delta).
		Update("current_quantity", gorm.Expr("current_quantity + ?", delta))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *stockRepo) CountTracked() (int64, error) {
	var count int64
	err := r.db.Model(&model.Stock{}).Count(&count).Error
	return count, err
}

func (r *stockRepo) TotalUnits() (int64, error) {
	var total int64
	err := r.db.Model(&model.Stock{}).
		Select("COALESCE(SUM(current_quantity), 0)").
		Scan(&total).Error
	return total, err
}

func (r *stockRepo) FindBelowMinimum() ([]model.Stock, error) {
	var stocks []model.Stock
	err := r.db.Preload("Product").
		Where("current_quantity <= minimum_quantity").
		Find(&stocks).Error
	return stocks, err
}
