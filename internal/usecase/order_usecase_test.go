package usecase_test

import (
	"context"
	"testing"

	"bookstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_ListMineAndInvoice(t *testing.T) {
	f := newFixture(t)
	f.addBook(t, "A", "Alpha", "10.00")
	m := f.addMember(t, "m@example.com")
	other := f.addMember(t, "o@example.com")
	ctx := context.Background()

	cart := usecase.NewCartUsecase(f.tx, f.carts)
	checkout := usecase.NewCheckoutUsecase(f.tx, f.carts, f.clock, f.ids)

	var ids []int64
	for i := 1; i <= 3; i++ {
		for j := 0; j < i; j++ {
			require.NoError(t, cart.AddOrIncrement(ctx, m.ID, "A"))
		}
		inv, err := checkout.Checkout(ctx, m.ID, "")
		require.NoError(t, err)
		ids = append(ids, inv.OrderID)
	}

	uc := usecase.NewOrderUsecase(f.tx, 2)

	page1, err := uc.ListMine(ctx, m.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, usecase.Page{Current: 1, Size: 2, TotalItems: 3, TotalPages: 2}, page1.Page)
	require.Len(t, page1.Orders, 2)
	assert.Equal(t, ids[2], page1.Orders[0].ID)
	assert.Equal(t, "30.00", page1.Orders[0].Total.StringFixed(2))

	page2, err := uc.ListMine(ctx, m.ID, 2)
	require.NoError(t, err)
	require.Len(t, page2.Orders, 1)
	assert.Equal(t, ids[0], page2.Orders[0].ID)

	inv, err := uc.Invoice(ctx, m.ID, ids[1])
	require.NoError(t, err)
	assert.Equal(t, "20.00", inv.Total.StringFixed(2))
	assert.True(t, inv.DueDate.Equal(inv.OrderDate.AddDate(0, 0, 7)))

	// 他人の注文は見えない
	_, err = uc.Invoice(ctx, other.ID, ids[1])
	assert.ErrorIs(t, err, usecase.ErrNotFound)

	_, err = uc.Invoice(ctx, m.ID, 9999)
	assert.ErrorIs(t, err, usecase.ErrNotFound)

	_, err = uc.ListMine(ctx, 0, 1)
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)

	empty, err := uc.ListMine(ctx, other.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, empty.Orders)
	assert.Equal(t, 0, empty.Page.TotalPages)
}

func TestOrder_ListMine_HugePageIsEmpty(t *testing.T) {
	f := newFixture(t)
	f.addBook(t, "A", "Alpha", "10.00")
	m := f.addMember(t, "m@example.com")
	ctx := context.Background()

	cart := usecase.NewCartUsecase(f.tx, f.carts)
	checkout := usecase.NewCheckoutUsecase(f.tx, f.carts, f.clock, f.ids)
	require.NoError(t, cart.AddOrIncrement(ctx, m.ID, "A"))
	_, err := checkout.Checkout(ctx, m.ID, "")
	require.NoError(t, err)

	out, err := usecase.NewOrderUsecase(f.tx, 5).ListMine(ctx, m.ID, usecase.ParsePage("3689348814741910324"))
	require.NoError(t, err)
	assert.Empty(t, out.Orders)
	assert.Equal(t, int64(1), out.Page.TotalItems)
	assert.Equal(t, 1, out.Page.TotalPages)
}
