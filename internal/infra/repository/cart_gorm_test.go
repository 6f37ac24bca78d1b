package repository

import (
	"context"
	"testing"

	repo "bookstore/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartGorm_Increment_Upsert(t *testing.T) {
	gormDB := openDB(t)
	seedBooks(t, gormDB, book("A", "S", "Author A", "Alpha", "10.00"))
	m := seedMember(t, gormDB, "a@example.com")
	r := NewCartGormRepository(gormDB)
	ctx := context.Background()

	// N回追加しても明細は1行で数量N
	for i := 0; i < 3; i++ {
		require.NoError(t, r.Increment(ctx, m.ID, "A"))
	}

	lines, err := r.ListByMember(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(3), lines[0].Quantity)
	assert.Equal(t, "Alpha", lines[0].Title)
	assert.Equal(t, "30.00", lines[0].Amount().StringFixed(2))
}

func TestCartGorm_ListByMember_OnlyOwnLines(t *testing.T) {
	gormDB := openDB(t)
	seedBooks(t, gormDB,
		book("A", "S", "x", "Beta", "1.00"),
		book("B", "S", "x", "Alpha", "2.00"),
	)
	m1 := seedMember(t, gormDB, "one@example.com")
	m2 := seedMember(t, gormDB, "two@example.com")
	r := NewCartGormRepository(gormDB)
	ctx := context.Background()

	require.NoError(t, r.Increment(ctx, m1.ID, "A"))
	require.NoError(t, r.Increment(ctx, m1.ID, "B"))
	require.NoError(t, r.Increment(ctx, m2.ID, "A"))

	lines, err := r.ListByMember(ctx, m1.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	// タイトル順
	assert.Equal(t, "B", lines[0].ISBN)
	assert.Equal(t, "A", lines[1].ISBN)

	empty, err := r.ListByMember(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCartGorm_Decrement(t *testing.T) {
	gormDB := openDB(t)
	seedBooks(t, gormDB, book("A", "S", "x", "Alpha", "1.00"))
	m := seedMember(t, gormDB, "a@example.com")
	r := NewCartGormRepository(gormDB)
	ctx := context.Background()

	require.NoError(t, r.Increment(ctx, m.ID, "A"))
	require.NoError(t, r.Increment(ctx, m.ID, "A"))

	left, err := r.Decrement(ctx, m.ID, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(1), left)

	left, err = r.Decrement(ctx, m.ID, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(0), left)

	// 0になった明細は残らない
	lines, err := r.ListByMember(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = r.Decrement(ctx, m.ID, "A")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCartGorm_ClearByMember(t *testing.T) {
	gormDB := openDB(t)
	seedBooks(t, gormDB, book("A", "S", "x", "Alpha", "1.00"), book("B", "S", "x", "Beta", "1.00"))
	m1 := seedMember(t, gormDB, "one@example.com")
	m2 := seedMember(t, gormDB, "two@example.com")
	r := NewCartGormRepository(gormDB)
	ctx := context.Background()

	require.NoError(t, r.Increment(ctx, m1.ID, "A"))
	require.NoError(t, r.Increment(ctx, m1.ID, "B"))
	require.NoError(t, r.Increment(ctx, m2.ID, "A"))

	n, err := r.ClearByMember(ctx, m1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	other, err := r.ListByMember(ctx, m2.ID)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}
