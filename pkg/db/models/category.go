package models

// Category groups products on the shelf (Food, Drink, ...).
type Category struct {
	ID           int       `gorm:"column:id;primaryKey"`
	CategoryName string    `gorm:"column:category_name;not null"`
	Products     []Product `gorm:"foreignKey:CategoryID"`
}
