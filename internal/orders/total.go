package orders

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
)

// Total sums price times quantity over the line items. Items whose product was
// not loaded contribute nothing.
func Total(items []models.OrderLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
