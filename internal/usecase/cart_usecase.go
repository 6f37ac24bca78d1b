package usecase

import (
	"context"
	"errors"
	"strings"

	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase はカートの業務ロジックです。
// 全削除はここには無い（チェックアウトのTxだけが消す）
type CartUsecase struct {
	tx    repo.TransactionManager
	carts repo.CartRepository
}

func NewCartUsecase(tx repo.TransactionManager, carts repo.CartRepository) *CartUsecase {
	return &CartUsecase{
		tx:    tx,
		carts: carts,
	}
}

type CartLineOutput struct {
	ISBN     string          `json:"isbn"`
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// total は表示用（保存しない）
type CartOutput struct {
	Lines []CartLineOutput `json:"lines"`
	Total decimal.Decimal  `json:"total"`
}

const msgLoginToBuy = "You need to log in to buy a book."

// カートに追加（同一書籍は数量+1）。
func (u *CartUsecase) AddOrIncrement(ctx context.Context, memberID int64, isbn string) error {
	if memberID <= 0 {
		return unauthorized(msgLoginToBuy)
	}
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return validation("isbn is required")
	}

	// 会員行をロックしてチェックアウトと直列化する
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Members().LockByID(ctx, memberID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return notFound("member not found", err)
			}
			return internal(err)
		}

		if _, err := r.Books().FindByISBN(ctx, isbn); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return notFound("book not found", err)
			}
			return internal(err)
		}

		if err := r.Carts().Increment(ctx, memberID, isbn); err != nil {
			return internal(err)
		}
		return nil
	})
	return typed(err, internal)
}

// 会員のカート（現在価格で結合）。空でもエラーにしない
func (u *CartUsecase) ListForMember(ctx context.Context, memberID int64) (CartOutput, error) {
	if memberID <= 0 {
		return CartOutput{}, unauthorized(msgLoginToBuy)
	}

	lines, err := u.carts.ListByMember(ctx, memberID)
	if err != nil {
		return CartOutput{}, internal(err)
	}
	return toCartOutput(lines), nil
}

// 数量を1減らす。0になった明細は消える
func (u *CartUsecase) RemoveOne(ctx context.Context, memberID int64, isbn string) (CartOutput, error) {
	if memberID <= 0 {
		return CartOutput{}, unauthorized(msgLoginToBuy)
	}
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return CartOutput{}, validation("isbn is required")
	}

	if _, err := u.carts.Decrement(ctx, memberID, isbn); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartOutput{}, notFound("book is not in the cart", err)
		}
		return CartOutput{}, internal(err)
	}
	return u.ListForMember(ctx, memberID)
}

func toCartOutput(lines []model.CartLineView) CartOutput {
	out := CartOutput{
		Lines: make([]CartLineOutput, 0, len(lines)),
		Total: decimal.Zero,
	}
	for _, l := range lines {
		amount := l.Amount()
		out.Lines = append(out.Lines, CartLineOutput{
			ISBN:     l.ISBN,
			Title:    l.Title,
			Author:   l.Author,
			Price:    l.Price,
			Quantity: l.Quantity,
			Amount:   amount,
		})
		out.Total = out.Total.Add(amount)
	}
	return out
}

// 型付きでないエラーは fallback で包む
func typed(err error, fallback func(error) error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsError(err); ok {
		return err
	}
	return fallback(err)
}
