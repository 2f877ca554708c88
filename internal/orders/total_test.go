package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
)

func priced(price string) *models.Product {
	return &models.Product{Price: decimal.RequireFromString(price)}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.OrderLineItem
		want  string
	}{
		{"no items", nil, "0"},
		{"single item", []models.OrderLineItem{{Product: priced("2.89"), Quantity: 10}}, "28.90"},
		{"mixed items", []models.OrderLineItem{
			{Product: priced("4.89"), Quantity: 1},
			{Product: priced("14.99"), Quantity: 1},
		}, "19.88"},
		{"unresolved product counts zero", []models.OrderLineItem{
			{Product: priced("2.00"), Quantity: 2},
			{Product: nil, Quantity: 50},
		}, "4.00"},
		{"negative quantity accepted", []models.OrderLineItem{{Product: priced("4.89"), Quantity: -1}}, "-4.89"},
		{"no float drift", []models.OrderLineItem{{Product: priced("0.10"), Quantity: 3}}, "0.30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Total(tt.items)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}
