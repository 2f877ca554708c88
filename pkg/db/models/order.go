package models

import "time"

// Order is a sale rung up by a cashier. A nil PaidOnDate marks it open/unpaid.
type Order struct {
	ID         int             `gorm:"column:id;primaryKey"`
	CashierID  int             `gorm:"column:cashier_id;not null;index"`
	Cashier    *Cashier        `gorm:"foreignKey:CashierID"`
	PaidOnDate *time.Time      `gorm:"column:paid_on_date"`
	LineItems  []OrderLineItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}
