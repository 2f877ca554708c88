package controllers

import (
	"fmt"
	"net/http"

	"github.com/angelmondragon/cornerstore-backend/api/responses"
	"github.com/angelmondragon/cornerstore-backend/api/validators"
	"github.com/angelmondragon/cornerstore-backend/internal/cashiers"
	pkgerrors "github.com/angelmondragon/cornerstore-backend/pkg/errors"
	"github.com/angelmondragon/cornerstore-backend/pkg/logger"
)

// GetCashier answers 204 rather than 404 when the cashier does not exist.
func GetCashier(svc cashiers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cashier service unavailable"))
			return
		}

		id, err := validators.PathInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithCashierID(r.Context(), id)
		cashier, err := svc.GetCashier(ctx, id)
		if err != nil {
			if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
				responses.WriteNoContent(w)
				return
			}
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, cashier)
	}
}

func CreateCashier(svc cashiers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cashier service unavailable"))
			return
		}

		var payload cashierRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cashier, err := svc.CreateCashier(r.Context(), cashiers.CreateCashierInput{
			FirstName: payload.FirstName,
			LastName:  payload.LastName,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteCreated(w, fmt.Sprintf("/cashiers/%d", cashier.ID), cashier)
	}
}

// cashierRequest accepts a client-sent id but the store always assigns one.
type cashierRequest struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
