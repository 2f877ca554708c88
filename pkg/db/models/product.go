package models

import "github.com/shopspring/decimal"

// Product is a sellable catalog entry. Price is the live price used for every
// order total; line items never snapshot it.
type Product struct {
	ID          int             `gorm:"column:id;primaryKey"`
	ProductName string          `gorm:"column:product_name;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Brand       string          `gorm:"column:brand;not null"`
	CategoryID  int             `gorm:"column:category_id;not null;index"`
	Category    *Category       `gorm:"foreignKey:CategoryID"`
}
