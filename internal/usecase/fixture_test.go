package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"bookstore/internal/domain/model"
	"bookstore/internal/infra/db"
	infraRepo "bookstore/internal/infra/repository"
	repo "bookstore/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SQLite上の本物のrepoで組み立てる
type fixture struct {
	db    *gorm.DB
	tx    repo.TransactionManager
	carts repo.CartRepository
	books repo.BookRepository
	clock *fixedClock
	ids   *seqIDs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gormDB := db.OpenTest(t)
	return &fixture{
		db:    gormDB,
		tx:    infraRepo.NewTxManagerGorm(gormDB),
		carts: infraRepo.NewCartGormRepository(gormDB),
		books: infraRepo.NewBookGormRepository(gormDB),
		clock: &fixedClock{now: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)},
		ids:   &seqIDs{},
	}
}

func (f *fixture) addBook(t *testing.T, isbn, title, price string) model.Book {
	t.Helper()
	b := model.Book{
		ISBN:    isbn,
		Subject: "Fiction",
		Author:  "Author " + isbn,
		Title:   title,
		Price:   decimal.RequireFromString(price),
	}
	require.NoError(t, f.db.Create(&b).Error)
	return b
}

func (f *fixture) addMember(t *testing.T, email string) model.Member {
	t.Helper()
	m := model.Member{
		Email:        email,
		PasswordHash: "x",
		FirstName:    "Grace",
		LastName:     "Hopper",
		Street:       "7 Compiler Rd",
		City:         "Arlington",
		PostalCode:   "22201",
	}
	require.NoError(t, f.db.Create(&m).Error)
	return m
}

func (f *fixture) setPrice(t *testing.T, isbn, price string) {
	t.Helper()
	require.NoError(t, f.db.Model(&model.Book{}).Where("isbn = ?", isbn).
		Update("price", decimal.RequireFromString(price)).Error)
}

func (f *fixture) count(t *testing.T, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(m).Count(&n).Error)
	return n
}

func (f *fixture) cartQty(t *testing.T, memberID int64) map[string]int64 {
	t.Helper()
	lines, err := f.carts.ListByMember(context.Background(), memberID)
	require.NoError(t, err)
	out := map[string]int64{}
	for _, l := range lines {
		out[l.ISBN] = l.Quantity
	}
	return out
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("token-%d", g.n)
}

// 明細の一括作成だけ失敗させるTx
type failingTx struct {
	inner repo.TransactionManager
}

func (f failingTx) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return f.inner.WithinTx(ctx, func(r repo.TxRepos) error {
		return fn(failingRepos{TxRepos: r})
	})
}

type failingRepos struct {
	repo.TxRepos
}

func (r failingRepos) OrderLines() repo.OrderLineRepository {
	return failingLines{OrderLineRepository: r.TxRepos.OrderLines()}
}

type failingLines struct {
	repo.OrderLineRepository
}

var errDiskFull = errors.New("disk full")

func (failingLines) CreateBulk(ctx context.Context, orderID int64, lines []model.OrderLine) error {
	return errDiskFull
}
