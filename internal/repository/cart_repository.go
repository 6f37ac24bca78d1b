package repository

import (
	"context"

	"bookstore/internal/domain/model"
)

type CartRepository interface {
	// 無ければ数量1で作成、あれば+1
	Increment(ctx context.Context, memberID int64, isbn string) error
	// 数量を-1。0になったら明細を削除して0を返す
	Decrement(ctx context.Context, memberID int64, isbn string) (int64, error)
	// 現在の書籍情報と結合した明細（タイトル順）
	ListByMember(ctx context.Context, memberID int64) ([]model.CartLineView, error)
}

// 全削除はチェックアウトのTxからだけ使う
type TxCartRepository interface {
	CartRepository
	ClearByMember(ctx context.Context, memberID int64) (int64, error)
}
