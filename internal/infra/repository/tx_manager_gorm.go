package repository

import (
	"context"

	repo "bookstore/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	members    repo.MemberRepository
	books      repo.BookRepository
	carts      repo.TxCartRepository
	orders     repo.OrderRepository
	orderLines repo.OrderLineRepository
}

func (r *txReposGorm) Members() repo.MemberRepository       { return r.members }
func (r *txReposGorm) Books() repo.BookRepository           { return r.books }
func (r *txReposGorm) Carts() repo.TxCartRepository         { return r.carts }
func (r *txReposGorm) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposGorm) OrderLines() repo.OrderLineRepository { return r.orderLines }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			members:    NewMemberGormRepository(tx),
			books:      NewBookGormRepository(tx),
			carts:      NewCartGormRepository(tx),
			orders:     NewOrderGormRepository(tx),
			orderLines: NewOrderLineGormRepository(tx),
		}
		return fn(r)
	})
}
