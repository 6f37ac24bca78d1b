package repository

import (
	"context"

	"bookstore/internal/domain/model"
)

type OrderLineRepository interface {
	CreateBulk(ctx context.Context, orderID int64, lines []model.OrderLine) error
	// 保存済みの明細を書籍名と結合して返す（id順）
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderLineView, error)
}
