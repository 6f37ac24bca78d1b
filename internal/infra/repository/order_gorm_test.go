package repository

import (
	"context"
	"math"
	"testing"
	"time"

	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderGorm_CreateAndLines(t *testing.T) {
	gormDB := openDB(t)
	seedBooks(t, gormDB, book("A", "S", "Author A", "Alpha", "10.00"))
	m := seedMember(t, gormDB, "a@example.com")
	orders := NewOrderGormRepository(gormDB)
	lines := NewOrderLineGormRepository(gormDB)
	ctx := context.Background()

	o := model.Order{MemberID: m.ID, OrderedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	o.SnapshotAddress(m)
	require.NoError(t, orders.Create(ctx, &o))
	require.NotZero(t, o.ID)

	price := decimal.RequireFromString("10.00")
	require.NoError(t, lines.CreateBulk(ctx, o.ID, []model.OrderLine{
		{ISBN: "A", Quantity: 2, UnitPrice: price, Amount: model.LineAmount(price, 2)},
		{ISBN: "gone", Quantity: 1, UnitPrice: price, Amount: price},
	}))

	got, err := lines.ListByOrderID(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alpha", got[0].Title)
	assert.Equal(t, "20.00", got[0].Amount.StringFixed(2))
	// カタログから消えた書籍でも明細は残る
	assert.Equal(t, "", got[1].Title)

	found, err := orders.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "London", found.ShipCity)

	_, err = orders.FindByID(ctx, o.ID+100)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestOrderGorm_CheckoutToken(t *testing.T) {
	gormDB := openDB(t)
	m := seedMember(t, gormDB, "a@example.com")
	orders := NewOrderGormRepository(gormDB)
	ctx := context.Background()

	token := "tok-1"
	first := model.Order{MemberID: m.ID, OrderedAt: time.Now(), CheckoutToken: &token}
	require.NoError(t, orders.Create(ctx, &first))

	dup := model.Order{MemberID: m.ID, OrderedAt: time.Now(), CheckoutToken: &token}
	assert.ErrorIs(t, orders.Create(ctx, &dup), repo.ErrDuplicate)

	// トークン無しは何件でも入る
	require.NoError(t, orders.Create(ctx, &model.Order{MemberID: m.ID, OrderedAt: time.Now()}))
	require.NoError(t, orders.Create(ctx, &model.Order{MemberID: m.ID, OrderedAt: time.Now()}))

	got, found, err := orders.FindByCheckoutToken(ctx, m.ID, token)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, first.ID, got.ID)

	_, found, err = orders.FindByCheckoutToken(ctx, m.ID, "unknown")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOrderGorm_ListByMemberID(t *testing.T) {
	gormDB := openDB(t)
	m := seedMember(t, gormDB, "a@example.com")
	other := seedMember(t, gormDB, "b@example.com")
	orders := NewOrderGormRepository(gormDB)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, orders.Create(ctx, &model.Order{MemberID: m.ID, OrderedAt: time.Now()}))
	}
	require.NoError(t, orders.Create(ctx, &model.Order{MemberID: other.ID, OrderedAt: time.Now()}))

	items, total, err := orders.ListByMemberID(ctx, m.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 2)
	// 新しい順
	assert.Greater(t, items[0].ID, items[1].ID)

	items, total, err = orders.ListByMemberID(ctx, m.ID, math.MaxInt, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, items)
}

func TestMemberGorm_DuplicateEmail(t *testing.T) {
	gormDB := openDB(t)
	seedMember(t, gormDB, "a@example.com")

	dup := model.Member{Email: "a@example.com", PasswordHash: "x"}
	err := NewMemberGormRepository(gormDB).Create(context.Background(), &dup)
	assert.ErrorIs(t, err, repo.ErrDuplicate)
}

func TestTxManagerGorm_RollsBack(t *testing.T) {
	gormDB := openDB(t)
	m := seedMember(t, gormDB, "a@example.com")
	tm := NewTxManagerGorm(gormDB)
	ctx := context.Background()

	err := tm.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().Create(ctx, &model.Order{MemberID: m.ID, OrderedAt: time.Now()}); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	var count int64
	require.NoError(t, gormDB.Model(&model.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
