package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Category is a closed set; anything outside it is rejected at validation.
type Category string

const (
	CategoryTShirts     Category = "T-Shirts"
	CategoryPants       Category = "Pants"
	CategoryDresses     Category = "Dresses"
	CategoryShoes       Category = "Shoes"
	CategoryAccessories Category = "Accessories"
	CategoryJackets     Category = "Jackets"
	CategoryBlouses     Category = "Blouses"
	CategoryShorts      Category = "Shorts"
	CategoryUnderwear   Category = "Underwear"
	CategoryOther       Category = "Other"
)

type Product struct {
	BaseModel
	Name        string            `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Description string            `gorm:"type:text" json:"description"`
	Model       string            `gorm:"type:varchar(50);not null" json:"model" validate:"required"`
	Category    Category          `gorm:"type:varchar(30);not null;default:'Other'" json:"category" validate:"required,oneof=T-Shirts Pants Dresses Shoes Accessories Jackets Blouses Shorts Underwear Other"`
	Brand       string            `gorm:"type:varchar(50);not null" json:"brand" validate:"required"`
	Specs       datatypes.JSONMap `gorm:"type:jsonb" json:"specs,omitempty"`
	Price       decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string            `gorm:"type:varchar(255)" json:"image_url"`
	Active      bool              `gorm:"not null;default:true" json:"active"`

	// Relasi
	Stock *Stock `gorm:"foreignKey:ProductID" json:"stock,omitempty" validate:"-"`
}

func (Product) TableName() string { return "products" }

// ProductRef is the read-only projection joined onto stock responses.
type ProductRef struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Model string          `json:"model"`
	Price decimal.Decimal `json:"price"`
}

func (p *Product) ToRef() ProductRef {
	return ProductRef{
		ID:    p.ID,
		Name:  p.Name,
		Model: p.Model,
		Price: p.Price,
	}
}
