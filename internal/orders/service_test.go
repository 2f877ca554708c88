package orders

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/angelmondragon/cornerstore-backend/pkg/db"
	"github.com/angelmondragon/cornerstore-backend/pkg/db/dbtest"
	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/cornerstore-backend/pkg/errors"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn := dbtest.Open(t)
	svc, err := NewService(NewRepository(conn), db.Wrap(conn))
	require.NoError(t, err)
	return svc, conn
}

func countRows(t *testing.T, conn *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, conn.Model(model).Count(&n).Error)
	return n
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	conn := dbtest.OpenEmpty(t)

	_, err := NewService(nil, db.Wrap(conn))
	require.Error(t, err)

	_, err = NewService(NewRepository(conn), nil)
	require.Error(t, err)
}

func TestGetOrderTotals(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		id    int
		total string
	}{
		{1, "28.90"},
		{2, "19.88"},
		{3, "8.89"},
		{4, "68.88"},
		{5, "2.00"},
	}

	for _, tt := range tests {
		got, err := svc.GetOrder(ctx, tt.id)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString(tt.total).Equal(got.Total), "order %d: want %s got %s", tt.id, tt.total, got.Total)
	}
}

func TestGetOrderExpandsCashierWithoutBackReference(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.GetOrder(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, got.Cashier)
	assert.Equal(t, "John", got.Cashier.FirstName)
	require.Len(t, got.OrderProducts, 2)
	assert.Equal(t, "Blue", got.OrderProducts[0].Product.ProductName)
	assert.Equal(t, "Drink", got.OrderProducts[0].Product.Category.CategoryName)
	require.NotNil(t, got.PaidOnDate)
}

func TestGetOrderNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetOrder(context.Background(), 99)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestListOrdersByDate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	all, err := svc.ListOrders(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	on := time.Date(2024, time.September, 3, 0, 0, 0, 0, time.UTC)
	got, err := svc.ListOrders(ctx, ListFilter{PaidOn: &on})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
	assert.True(t, decimal.RequireFromString("19.88").Equal(got[0].Total))
}

func TestDeleteOrderRemovesLineItems(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteOrder(ctx, 4))

	_, err := svc.GetOrder(ctx, 4)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	var orphans int64
	require.NoError(t, conn.Model(&models.OrderLineItem{}).Where("order_id = ?", 4).Count(&orphans).Error)
	assert.Zero(t, orphans)
	assert.EqualValues(t, 6, countRows(t, conn, &models.OrderLineItem{}))
	assert.EqualValues(t, 4, countRows(t, conn, &models.Order{}))
}

func TestDeleteOrderNotFound(t *testing.T) {
	svc, conn := newTestService(t)

	err := svc.DeleteOrder(context.Background(), 99)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.EqualValues(t, 9, countRows(t, conn, &models.OrderLineItem{}))
}

func TestCreateOrder(t *testing.T) {
	svc, conn := newTestService(t)

	got, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CashierID: 1,
		LineItems: []LineItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 4, Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, got.ID)
	assert.Nil(t, got.PaidOnDate)
	require.NotNil(t, got.Cashier)
	assert.Equal(t, "Mark", got.Cashier.FirstName)
	require.Len(t, got.OrderProducts, 2)
	assert.True(t, decimal.RequireFromString("38.65").Equal(got.Total))
	assert.EqualValues(t, 11, countRows(t, conn, &models.OrderLineItem{}))
}

func TestCreateOrderStoresPaidDateInUTC(t *testing.T) {
	svc, _ := newTestService(t)

	paid := time.Date(2024, time.October, 1, 9, 30, 0, 0, time.FixedZone("CST", -6*60*60))
	got, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CashierID:  2,
		PaidOnDate: &paid,
		LineItems:  []LineItemInput{{ProductID: 3, Quantity: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, got.PaidOnDate)
	assert.True(t, paid.Equal(*got.PaidOnDate))
}

func TestCreateOrderWithoutLineItems(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.CreateOrder(context.Background(), CreateOrderInput{CashierID: 3})
	require.NoError(t, err)
	assert.Empty(t, got.OrderProducts)
	assert.True(t, got.Total.IsZero())
}

func TestCreateOrderUnknownProductWritesNothing(t *testing.T) {
	svc, conn := newTestService(t)

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CashierID: 1,
		LineItems: []LineItemInput{
			{ProductID: 1, Quantity: 1},
			{ProductID: 100, Quantity: 1},
			{ProductID: 99, Quantity: 1},
		},
	})
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeInvalidReference, typed.Code())
	assert.Equal(t, map[string]any{"missing_product_ids": []int{99, 100}}, typed.Details())

	assert.EqualValues(t, 5, countRows(t, conn, &models.Order{}))
	assert.EqualValues(t, 9, countRows(t, conn, &models.OrderLineItem{}))
}

func TestCreateOrderUnknownCashierRollsBack(t *testing.T) {
	svc, conn := newTestService(t)

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CashierID: 99,
		LineItems: []LineItemInput{{ProductID: 1, Quantity: 1}},
	})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeInvalidReference))

	assert.EqualValues(t, 5, countRows(t, conn, &models.Order{}))
	assert.EqualValues(t, 9, countRows(t, conn, &models.OrderLineItem{}))
}
