package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/cornerstore-backend/internal/products"
	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
)

// CashierSummary is the cashier nested under an order, without the cashier's orders.
type CashierSummary struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LineItemDTO is one product and quantity on an order.
type LineItemDTO struct {
	ID        int                  `json:"id"`
	OrderID   int                  `json:"order_id"`
	ProductID int                  `json:"product_id"`
	Product   *products.ProductDTO `json:"product"`
	Quantity  int                  `json:"quantity"`
}

// OrderDTO is the fully expanded order with its computed total.
type OrderDTO struct {
	ID            int             `json:"id"`
	CashierID     int             `json:"cashier_id"`
	Cashier       *CashierSummary `json:"cashier,omitempty"`
	OrderProducts []LineItemDTO   `json:"order_products"`
	Total         decimal.Decimal `json:"total"`
	PaidOnDate    *time.Time      `json:"paid_on_date"`
}

// LineItemInput is a requested product and quantity.
type LineItemInput struct {
	ProductID int
	Quantity  int
}

// CreateOrderInput is the data needed to ring up a new order.
type CreateOrderInput struct {
	CashierID  int
	PaidOnDate *time.Time
	LineItems  []LineItemInput
}

// ListFilter narrows ListOrders. A nil PaidOn returns every order.
type ListFilter struct {
	PaidOn *time.Time
}

// FromModel projects an order. The cashier is included only when loaded.
func FromModel(o *models.Order) OrderDTO {
	dto := OrderDTO{
		ID:            o.ID,
		CashierID:     o.CashierID,
		OrderProducts: make([]LineItemDTO, 0, len(o.LineItems)),
		Total:         Total(o.LineItems),
		PaidOnDate:    o.PaidOnDate,
	}
	if o.Cashier != nil {
		dto.Cashier = &CashierSummary{
			ID:        o.Cashier.ID,
			FirstName: o.Cashier.FirstName,
			LastName:  o.Cashier.LastName,
		}
	}
	for _, item := range o.LineItems {
		dto.OrderProducts = append(dto.OrderProducts, LineItemDTO{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Product:   products.FromModel(item.Product),
			Quantity:  item.Quantity,
		})
	}
	return dto
}

// FromModels projects a slice of orders.
func FromModels(items []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(items))
	for i := range items {
		out = append(out, FromModel(&items[i]))
	}
	return out
}
