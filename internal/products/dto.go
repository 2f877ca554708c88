package products

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
)

// CategoryDTO is the category payload nested under products.
type CategoryDTO struct {
	ID           int    `json:"id"`
	CategoryName string `json:"category_name"`
}

// ProductDTO is the product payload returned to clients.
type ProductDTO struct {
	ID          int             `json:"id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Brand       string          `json:"brand"`
	CategoryID  int             `json:"category_id"`
	Category    *CategoryDTO    `json:"category"`
}

// PopularProductDTO is a product ranked by units sold.
type PopularProductDTO struct {
	ProductDTO
	TotalQuantitySold int64 `json:"total_quantity_sold"`
}

// ProductInput carries the writable product fields for create and update.
type ProductInput struct {
	ProductName string
	Price       decimal.Decimal
	Brand       string
	CategoryID  int
}

// FromModel projects a product and its category, when loaded.
func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	dto := &ProductDTO{
		ID:          p.ID,
		ProductName: p.ProductName,
		Price:       p.Price,
		Brand:       p.Brand,
		CategoryID:  p.CategoryID,
	}
	if p.Category != nil {
		dto.Category = &CategoryDTO{
			ID:           p.Category.ID,
			CategoryName: p.Category.CategoryName,
		}
	}
	return dto
}

func fromModels(items []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(items))
	for i := range items {
		out = append(out, *FromModel(&items[i]))
	}
	return out
}
