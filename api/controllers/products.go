package controllers

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/cornerstore-backend/api/responses"
	"github.com/angelmondragon/cornerstore-backend/api/validators"
	"github.com/angelmondragon/cornerstore-backend/internal/products"
	pkgerrors "github.com/angelmondragon/cornerstore-backend/pkg/errors"
	"github.com/angelmondragon/cornerstore-backend/pkg/logger"
)

func ListProducts(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		list, err := svc.ListProducts(r.Context(), r.URL.Query().Get("search"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

func CreateProduct(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteCreated(w, fmt.Sprintf("/products/%d", product.ID), product)
	}
}

// UpdateProduct answers 204 whether or not the product existed.
func UpdateProduct(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.PathInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithProductID(r.Context(), id)
		updated, err := svc.UpdateProduct(ctx, id, payload.toInput())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if !updated {
			logg.Warn(ctx, "product.update.not_found")
		}

		responses.WriteNoContent(w)
	}
}

func PopularProducts(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		amount, err := validators.ParseQueryInt(r, "amount", products.DefaultPopularLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.PopularProducts(r.Context(), amount)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

type productRequest struct {
	ID          int             `json:"id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Brand       string          `json:"brand"`
	CategoryID  int             `json:"category_id"`
}

func (p productRequest) toInput() products.ProductInput {
	return products.ProductInput{
		ProductName: p.ProductName,
		Price:       p.Price,
		Brand:       p.Brand,
		CategoryID:  p.CategoryID,
	}
}
