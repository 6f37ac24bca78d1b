package repository

import (
	"context"

	"bookstore/internal/domain/model"
)

type OrderRepository interface {
	// IDは採番されて order に埋まる
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByMemberID(ctx context.Context, memberID int64, page int, limit int) ([]model.Order, int64, error)

	//同じキーなら同じ注文を返す
	FindByCheckoutToken(ctx context.Context, memberID int64, token string) (model.Order, bool, error)
}
