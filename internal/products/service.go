package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/cornerstore-backend/pkg/db"
	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/cornerstore-backend/pkg/errors"
)

// DefaultPopularLimit is used when the caller does not ask for a size.
const DefaultPopularLimit = 5

// Service exposes catalog reads, writes and the popularity report.
type Service interface {
	ListProducts(ctx context.Context, search string) ([]ProductDTO, error)
	CreateProduct(ctx context.Context, input ProductInput) (*ProductDTO, error)
	// UpdateProduct reports false when no product has the id.
	UpdateProduct(ctx context.Context, id int, input ProductInput) (bool, error)
	PopularProducts(ctx context.Context, limit int) ([]PopularProductDTO, error)
}

type service struct {
	repo *Repository
}

// NewService builds the product service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListProducts(ctx context.Context, search string) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return fromModels(rows), nil
}

func (s *service) CreateProduct(ctx context.Context, input ProductInput) (*ProductDTO, error) {
	product := &models.Product{
		ProductName: input.ProductName,
		Price:       input.Price,
		Brand:       input.Brand,
		CategoryID:  input.CategoryID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, mapWriteError(err, "create product", input.CategoryID)
	}

	created, err := s.repo.FindByID(ctx, product.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load created product")
	}
	return FromModel(created), nil
}

func (s *service) UpdateProduct(ctx context.Context, id int, input ProductInput) (bool, error) {
	affected, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return false, mapWriteError(err, "update product", input.CategoryID)
	}
	return affected > 0, nil
}

func (s *service) PopularProducts(ctx context.Context, limit int) ([]PopularProductDTO, error) {
	if limit <= 0 {
		return []PopularProductDTO{}, nil
	}

	ranked, err := s.repo.Popular(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rank products")
	}

	ids := make([]int, 0, len(ranked))
	for _, row := range ranked {
		ids = append(ids, row.ProductID)
	}
	byID, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load ranked products")
	}

	out := make([]PopularProductDTO, 0, len(ranked))
	for _, row := range ranked {
		product, ok := byID[row.ProductID]
		if !ok {
			continue
		}
		out = append(out, PopularProductDTO{
			ProductDTO:        *FromModel(&product),
			TotalQuantitySold: row.TotalQuantitySold,
		})
	}
	return out, nil
}

func mapWriteError(err error, action string, categoryID int) error {
	if db.IsForeignKeyViolation(err) {
		return pkgerrors.Wrap(pkgerrors.CodeInvalidReference, err, "category does not exist").
			WithDetails(map[string]any{"category_id": categoryID})
	}
	var typed *pkgerrors.Error
	if errors.As(err, &typed) {
		return err
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, action)
}
