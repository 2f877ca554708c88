package models

// Cashier is the staff member who rings up orders.
type Cashier struct {
	ID        int     `gorm:"column:id;primaryKey"`
	FirstName string  `gorm:"column:first_name;not null"`
	LastName  string  `gorm:"column:last_name;not null"`
	Orders    []Order `gorm:"foreignKey:CashierID"`
}
