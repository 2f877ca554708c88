// Package seed loads the starter catalog, cashiers and orders the store opens with.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func Cashiers() []models.Cashier {
	return []models.Cashier{
		{ID: 1, FirstName: "Mark", LastName: "Denmark"},
		{ID: 2, FirstName: "John", LastName: "Simpson"},
		{ID: 3, FirstName: "Sturgill", LastName: "McBride"},
		{ID: 4, FirstName: "Beth", LastName: "Burbank"},
		{ID: 5, FirstName: "Sarah", LastName: "Elisabeth"},
	}
}

func Categories() []models.Category {
	return []models.Category{
		{ID: 1, CategoryName: "Food"},
		{ID: 2, CategoryName: "Drink"},
		{ID: 3, CategoryName: "Lotto"},
		{ID: 4, CategoryName: "Gas"},
	}
}

func Products() []models.Product {
	return []models.Product{
		{ID: 1, ProductName: "Cool Ranch", Price: decimal.RequireFromString("14.99"), Brand: "Doritos", CategoryID: 1},
		{ID: 2, ProductName: "Blue", Price: decimal.RequireFromString("4.89"), Brand: "Gatorade", CategoryID: 2},
		{ID: 3, ProductName: "Powerball", Price: decimal.RequireFromString("2.00"), Brand: "Government", CategoryID: 3},
		{ID: 4, ProductName: "Gas", Price: decimal.RequireFromString("2.89"), Brand: "Gas", CategoryID: 4},
	}
}

func Orders() []models.Order {
	return []models.Order{
		{ID: 1, CashierID: 1, PaidOnDate: date(2024, time.January, 12)},
		{ID: 2, CashierID: 2, PaidOnDate: date(2024, time.September, 3)},
		{ID: 3, CashierID: 3},
		{ID: 4, CashierID: 4},
		{ID: 5, CashierID: 5, PaidOnDate: date(2025, time.January, 1)},
	}
}

func LineItems() []models.OrderLineItem {
	return []models.OrderLineItem{
		{ID: 1, ProductID: 4, OrderID: 1, Quantity: 10},
		{ID: 2, ProductID: 2, OrderID: 2, Quantity: 1},
		{ID: 3, ProductID: 1, OrderID: 2, Quantity: 1},
		{ID: 4, ProductID: 3, OrderID: 3, Quantity: 2},
		{ID: 5, ProductID: 2, OrderID: 3, Quantity: 1},
		{ID: 6, ProductID: 1, OrderID: 4, Quantity: 2},
		{ID: 7, ProductID: 2, OrderID: 4, Quantity: 5},
		{ID: 8, ProductID: 4, OrderID: 4, Quantity: 5},
		{ID: 9, ProductID: 3, OrderID: 5, Quantity: 1},
	}
}

// Apply inserts the seed rows once. A store that already has cashiers is left alone.
func Apply(ctx context.Context, conn *gorm.DB) error {
	var count int64
	if err := conn.WithContext(ctx).Model(&models.Cashier{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count cashiers: %w", err)
	}
	if count > 0 {
		return nil
	}

	return conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cashiers := Cashiers()
		categories := Categories()
		products := Products()
		orders := Orders()
		items := LineItems()

		steps := []struct {
			name string
			rows any
		}{
			{"cashiers", &cashiers},
			{"categories", &categories},
			{"products", &products},
			{"orders", &orders},
			{"order_line_items", &items},
		}
		for _, step := range steps {
			if err := tx.Omit(clause.Associations).Create(step.rows).Error; err != nil {
				return fmt.Errorf("seed %s: %w", step.name, err)
			}
		}
		return nil
	})
}
