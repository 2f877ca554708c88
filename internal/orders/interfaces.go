package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
)

// Repository defines persistence operations for orders and their line items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context, filter ListFilter) ([]models.Order, error)
	FindByID(ctx context.Context, id int) (*models.Order, error)
	MissingProductIDs(ctx context.Context, ids []int) ([]int, error)
	Create(ctx context.Context, order *models.Order) error
	CreateLineItems(ctx context.Context, items []models.OrderLineItem) error
	DeleteLineItems(ctx context.Context, orderID int) error
	Delete(ctx context.Context, id int) (int64, error)
}
