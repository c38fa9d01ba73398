package model

// Stock is the inventory ledger row. At most one per product, and
// CurrentQuantity must never go negative through the add/remove paths.
// MinimumQuantity is an advisory restock threshold, not a hard floor.
type Stock struct {
	BaseModel
	ProductID       uint    `gorm:"uniqueIndex;not null" json:"product_id" validate:"required"`
	Product         Product `json:"-" validate:"-"` // Relasi - skip validation
	CurrentQuantity int     `gorm:"not null;default:0" json:"current_quantity" validate:"gte=0"`
	MinimumQuantity int     `gorm:"not null;default:0" json:"minimum_quantity" validate:"gte=0"`
}

func (Stock) TableName() string { return "stocks" }

// StockResponse joins the stock row with a small product projection.
// Convenience view for read endpoints, not a stored shape.
type StockResponse struct {
	Stock
	ProductRef ProductRef `json:"product"`
}

func (s *Stock) ToResponse() StockResponse {
	return StockResponse{
		Stock:      *s,
		ProductRef: s.Product.ToRef(),
	}
}
