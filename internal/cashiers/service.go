package cashiers

import (
	"context"
	"fmt"

	"github.com/angelmondragon/cornerstore-backend/pkg/db"
	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/cornerstore-backend/pkg/errors"
)

// Service exposes cashier lookups and registration.
type Service interface {
	// GetCashier returns a NOT_FOUND error when no cashier has the id.
	GetCashier(ctx context.Context, id int) (*CashierDTO, error)
	CreateCashier(ctx context.Context, input CreateCashierInput) (*CashierDTO, error)
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cashiers repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetCashier(ctx context.Context, id int) (*CashierDTO, error) {
	cashier, err := s.repo.FindWithOrders(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cashier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cashier")
	}
	dto := FromModel(cashier)
	return &dto, nil
}

func (s *service) CreateCashier(ctx context.Context, input CreateCashierInput) (*CashierDTO, error) {
	cashier := &models.Cashier{
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if err := s.repo.Create(ctx, cashier); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cashier")
	}
	dto := FromModel(cashier)
	return &dto, nil
}
