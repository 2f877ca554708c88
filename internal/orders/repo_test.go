package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/cornerstore-backend/pkg/db/dbtest"
	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
)

func orderIDs(items []models.Order) []int {
	ids := make([]int, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestRepositoryListExpandsAssociations(t *testing.T) {
	repo := NewRepository(dbtest.Open(t))

	got, err := repo.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, orderIDs(got))

	order4 := got[3]
	require.NotNil(t, order4.Cashier)
	assert.Equal(t, "Beth", order4.Cashier.FirstName)
	require.Len(t, order4.LineItems, 3)
	assert.Equal(t, []int{6, 7, 8}, []int{order4.LineItems[0].ID, order4.LineItems[1].ID, order4.LineItems[2].ID})
	for _, item := range order4.LineItems {
		require.NotNil(t, item.Product)
		require.NotNil(t, item.Product.Category)
	}
}

func TestRepositoryListFiltersByPaidDay(t *testing.T) {
	repo := NewRepository(dbtest.Open(t))
	ctx := context.Background()

	day := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &v
	}

	tests := []struct {
		name string
		on   *time.Time
		want []int
	}{
		{"september third", day(2024, time.September, 3), []int{2}},
		{"january twelfth", day(2024, time.January, 12), []int{1}},
		{"new year", day(2025, time.January, 1), []int{5}},
		{"no orders that day", day(2023, time.March, 1), []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, ListFilter{PaidOn: tt.on})
			require.NoError(t, err)
			assert.Equal(t, tt.want, orderIDs(got))
		})
	}
}

func TestRepositoryListMatchesWholeDay(t *testing.T) {
	conn := dbtest.Open(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	late := time.Date(2024, time.September, 3, 23, 15, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &models.Order{CashierID: 1, PaidOnDate: &late}))

	on := time.Date(2024, time.September, 3, 0, 0, 0, 0, time.UTC)
	got, err := repo.List(ctx, ListFilter{PaidOn: &on})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 6}, orderIDs(got))
}

func TestRepositoryMissingProductIDs(t *testing.T) {
	repo := NewRepository(dbtest.Open(t))
	ctx := context.Background()

	missing, err := repo.MissingProductIDs(ctx, []int{1, 99, 4, 42, 99})
	require.NoError(t, err)
	assert.Equal(t, []int{42, 99}, missing)

	missing, err = repo.MissingProductIDs(ctx, []int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Empty(t, missing)

	missing, err = repo.MissingProductIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestRepositoryFindByIDNotFound(t *testing.T) {
	repo := NewRepository(dbtest.Open(t))

	_, err := repo.FindByID(context.Background(), 404)
	require.Error(t, err)
}
