package cashiers

import (
	"context"

	"gorm.io/gorm"

	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
)

// Repository reads and writes cashiers.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindWithOrders loads the cashier, their orders and each order's line items with
// product and category.
func (r *Repository) FindWithOrders(ctx context.Context, id int) (*models.Cashier, error) {
	var cashier models.Cashier
	err := r.db.WithContext(ctx).
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("orders.id ASC")
		}).
		Preload("Orders.LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_line_items.id ASC")
		}).
		Preload("Orders.LineItems.Product.Category").
		Where("id = ?", id).
		First(&cashier).Error
	if err != nil {
		return nil, err
	}
	return &cashier, nil
}

func (r *Repository) Create(ctx context.Context, cashier *models.Cashier) error {
	return r.db.WithContext(ctx).Omit("Orders").Create(cashier).Error
}
