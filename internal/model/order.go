package model

import "gorm.io/datatypes"

const OrderStatusPending = "pending"

// Order belongs to the user that created it. Status is a free-form string
// (no transition rules); Items is an opaque payload the backend stores as-is.
type Order struct {
	BaseModel
	UserID uint           `gorm:"index;not null" json:"user_id"`
	User   *User          `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
	Status string         `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	Items  datatypes.JSON `gorm:"type:jsonb" json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }
