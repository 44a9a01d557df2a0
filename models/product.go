package models

import (
	"github.com/ThomasMo54/teaching-shop-example/datatypes"
	"github.com/ThomasMo54/teaching-shop-example/model"
)

// Product is an item of the shop catalogue.
type Product struct {
	ID            uint                    `gorm:"primaryKey"`
	Name          string                  `gorm:"size:120;not null" validate:"required,max=120"`
	Description   *string                 `gorm:"size:2000" validate:"omitempty,max=2000"`
	Price         datatypes.CurrencyFloat `validate:"min=0"`
	Stock         int                     `validate:"min=0"`
	AvailableFrom *datatypes.Date
	CarrierID     *uint
	Carrier       *Carrier `gorm:"foreignKey:CarrierID"`
	model.BaseModel
}

func (Product) TableName() string {
	return "products"
}
