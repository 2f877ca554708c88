package products

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
)

// PopularRow is one product id with the units sold across all line items.
type PopularRow struct {
	ProductID         int   `gorm:"column:product_id"`
	TotalQuantitySold int64 `gorm:"column:total_quantity_sold"`
}

// Repository holds the product catalog queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// List returns every product with its category, ordered by id. A non-empty term
// keeps products whose name or category name contains it, ignoring case.
func (r *Repository) List(ctx context.Context, term string) ([]models.Product, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Preload("Category")

	if term = strings.TrimSpace(term); term != "" {
		pattern := containsPattern(term)
		query = query.Where(
			"LOWER(products.product_name) LIKE ? ESCAPE '\\' OR LOWER(categories.category_name) LIKE ? ESCAPE '\\'",
			pattern, pattern,
		)
	}

	var out []models.Product
	if err := query.Order("products.id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID loads one product with its category.
func (r *Repository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDs loads products with categories, keyed by id.
func (r *Repository) FindByIDs(ctx context.Context, ids []int) (map[int]models.Product, error) {
	out := make(map[int]models.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row
	}
	return out, nil
}

func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Omit("Category").Create(product).Error
}

// Update replaces the writable columns in place and reports how many rows matched.
func (r *Repository) Update(ctx context.Context, id int, input ProductInput) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"product_name": input.ProductName,
			"price":        input.Price,
			"brand":        input.Brand,
			"category_id":  input.CategoryID,
		})
	return res.RowsAffected, res.Error
}

// Popular ranks products by total quantity across every order line item, paid or
// not. Ties go to the lower product id.
func (r *Repository) Popular(ctx context.Context, limit int) ([]PopularRow, error) {
	var rows []PopularRow
	err := r.db.WithContext(ctx).
		Table("order_line_items").
		Select("order_line_items.product_id AS product_id, SUM(order_line_items.quantity) AS total_quantity_sold").
		Joins("JOIN products ON products.id = order_line_items.product_id").
		Group("order_line_items.product_id").
		Order("total_quantity_sold DESC").
		Order("order_line_items.product_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lower-cased LIKE pattern that matches term literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
