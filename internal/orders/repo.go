package orders

import (
	"context"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// expanded loads the cashier and every line item with product and category.
func (r *repository) expanded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Cashier").
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_line_items.id ASC")
		}).
		Preload("LineItems.Product.Category")
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]models.Order, error) {
	query := r.expanded(ctx)
	if filter.PaidOn != nil {
		start := startOfDay(*filter.PaidOn)
		query = query.Where("orders.paid_on_date >= ? AND orders.paid_on_date < ?", start, start.AddDate(0, 0, 1))
	}

	var orders []models.Order
	if err := query.Order("orders.id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	if err := r.expanded(ctx).Where("orders.id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// MissingProductIDs returns, sorted and without duplicates, the ids that match no product.
func (r *repository) MissingProductIDs(ctx context.Context, ids []int) ([]int, error) {
	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	if len(wanted) == 0 {
		return nil, nil
	}

	unique := make([]int, 0, len(wanted))
	for id := range wanted {
		unique = append(unique, id)
	}

	var found []int
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id IN ?", unique).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}
	for _, id := range found {
		delete(wanted, id)
	}

	missing := make([]int, 0, len(wanted))
	for id := range wanted {
		missing = append(missing, id)
	}
	sort.Ints(missing)
	return missing, nil
}

func (r *repository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error
}

func (r *repository) CreateLineItems(ctx context.Context, items []models.OrderLineItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&items).Error
}

func (r *repository) DeleteLineItems(ctx context.Context, orderID int) error {
	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&models.OrderLineItem{}).Error
}

func (r *repository) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Order{})
	return res.RowsAffected, res.Error
}
