package models

import "github.com/ThomasMo54/teaching-shop-example/model"

// Carrier is a shipping company products can be delivered with.
type Carrier struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:80;not null;uniqueIndex" validate:"required,max=80"`
	DelayDays int    `validate:"min=0" label:"Delivery delay (days)"`
	model.BaseModel
}

func (Carrier) TableName() string {
	return "carriers"
}

func (Carrier) DefaultOrder() string {
	return "name"
}
