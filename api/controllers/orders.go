package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/angelmondragon/cornerstore-backend/api/responses"
	"github.com/angelmondragon/cornerstore-backend/api/validators"
	"github.com/angelmondragon/cornerstore-backend/internal/orders"
	pkgerrors "github.com/angelmondragon/cornerstore-backend/pkg/errors"
	"github.com/angelmondragon/cornerstore-backend/pkg/logger"
)

// ListOrders returns every order, or only those paid on ?orderDate=.
func ListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		paidOn, err := validators.ParseQueryDate(r, "orderDate")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListOrders(r.Context(), orders.ListFilter{PaidOn: paidOn})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

func GetOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		id, err := validators.PathInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithOrderID(r.Context(), id)
		order, err := svc.GetOrder(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

func DeleteOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		id, err := validators.PathInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithOrderID(r.Context(), id)
		if err := svc.DeleteOrder(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		logg.Info(ctx, "order.deleted")

		responses.WriteNoContent(w)
	}
}

func CreateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload orderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithCashierID(r.Context(), payload.CashierID)
		order, err := svc.CreateOrder(ctx, payload.toInput())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		logg.Info(logg.WithOrderID(ctx, order.ID), "order.created")

		responses.WriteCreated(w, fmt.Sprintf("/orders/%d", order.ID), order)
	}
}

type orderRequest struct {
	ID            int                   `json:"id"`
	CashierID     int                   `json:"cashier_id"`
	PaidOnDate    *paidOnDate           `json:"paid_on_date"`
	OrderProducts []orderProductRequest `json:"order_products" validate:"dive"`
}

// orderProductRequest ignores id and order_id; the order being created owns its items.
type orderProductRequest struct {
	ID        int `json:"id"`
	OrderID   int `json:"order_id"`
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

func (o orderRequest) toInput() orders.CreateOrderInput {
	input := orders.CreateOrderInput{
		CashierID: o.CashierID,
		LineItems: make([]orders.LineItemInput, 0, len(o.OrderProducts)),
	}
	if o.PaidOnDate != nil {
		paid := o.PaidOnDate.Time
		input.PaidOnDate = &paid
	}
	for _, item := range o.OrderProducts {
		input.LineItems = append(input.LineItems, orders.LineItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return input
}

// paidOnDate binds paid_on_date from a plain date or a timestamp.
type paidOnDate struct {
	time.Time
}

func (d *paidOnDate) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("paid_on_date must be a string: %w", err)
	}
	ts, err := validators.ParseTimestamp(raw)
	if err != nil {
		return err
	}
	d.Time = ts
	return nil
}
