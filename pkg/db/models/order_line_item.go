package models

// OrderLineItem joins an order to a product with a quantity.
type OrderLineItem struct {
	ID        int      `gorm:"column:id;primaryKey"`
	OrderID   int      `gorm:"column:order_id;not null;index"`
	ProductID int      `gorm:"column:product_id;not null;index"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	Quantity  int      `gorm:"column:quantity;not null"`
}
