package orders

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/angelmondragon/cornerstore-backend/pkg/db"
	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/cornerstore-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines order reads, deletes and creation.
type Service interface {
	ListOrders(ctx context.Context, filter ListFilter) ([]OrderDTO, error)
	GetOrder(ctx context.Context, id int) (*OrderDTO, error)
	DeleteOrder(ctx context.Context, id int) error
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderDTO, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds the order service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) ListOrders(ctx context.Context, filter ListFilter) ([]OrderDTO, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return FromModels(rows), nil
}

func (s *service) GetOrder(ctx context.Context, id int) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	dto := FromModel(order)
	return &dto, nil
}

func (s *service) DeleteOrder(ctx context.Context, id int) error {
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.DeleteLineItems(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order line items")
		}
		affected, err := repo.Delete(ctx, id)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order")
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil
	})
}

// CreateOrder checks every product reference before writing anything, then
// inserts the order and its line items in one transaction.
func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderDTO, error) {
	productIDs := make([]int, 0, len(input.LineItems))
	for _, item := range input.LineItems {
		productIDs = append(productIDs, item.ProductID)
	}

	missing, err := s.repo.MissingProductIDs(ctx, productIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check products")
	}
	if len(missing) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidReference, "order references unknown products").
			WithDetails(map[string]any{"missing_product_ids": missing})
	}

	order := &models.Order{
		CashierID:  input.CashierID,
		PaidOnDate: normalizePaidOn(input.PaidOnDate),
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Create(ctx, order); err != nil {
			return err
		}
		items := make([]models.OrderLineItem, 0, len(input.LineItems))
		for _, item := range input.LineItems {
			items = append(items, models.OrderLineItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
		return repo.CreateLineItems(ctx, items)
	})
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInvalidReference, err, "order references unknown cashier or product").
				WithDetails(map[string]any{"cashier_id": input.CashierID})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}

	return s.GetOrder(ctx, order.ID)
}

func normalizePaidOn(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

// startOfDay is midnight UTC of t's calendar date in t's own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
