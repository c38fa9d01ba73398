package repository

import (
	"go-store-api/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindByName(name string) (*model.Product, error)
	Exists(id uint) (bool, error)
	Update(product *model.Product) error
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindByName(name string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "name = ?", name).Error
	return &product, err
}

func (r *productRepo) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

// UpdateFields applies a partial update without touching the other columns
func (r *productRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&model.Product{}).Where("id = ?", id).Updates(fields).Error
}

func (r *productRepo) Delete(id uint) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}
