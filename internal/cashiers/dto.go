package cashiers

import (
	"github.com/angelmondragon/cornerstore-backend/internal/orders"
	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
)

// CashierDTO is a cashier with every order they rang up.
type CashierDTO struct {
	ID        int               `json:"id"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Orders    []orders.OrderDTO `json:"orders"`
}

// CreateCashierInput holds the new cashier's name.
type CreateCashierInput struct {
	FirstName string
	LastName  string
}

// FromModel projects a cashier. Nested orders carry no cashier back-reference.
func FromModel(c *models.Cashier) CashierDTO {
	out := CashierDTO{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Orders:    make([]orders.OrderDTO, 0, len(c.Orders)),
	}
	for i := range c.Orders {
		order := c.Orders[i]
		order.Cashier = nil
		out.Orders = append(out.Orders, orders.FromModel(&order))
	}
	return out
}
