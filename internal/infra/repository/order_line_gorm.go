package repository

import (
	"context"

	"bookstore/internal/domain/model"

	"gorm.io/gorm"
)

type OrderLineGormRepository struct {
	db *gorm.DB
}

func NewOrderLineGormRepository(db *gorm.DB) *OrderLineGormRepository {
	return &OrderLineGormRepository{db: db}
}

func (r *OrderLineGormRepository) CreateBulk(ctx context.Context, orderID int64, lines []model.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	for i := range lines {
		lines[i].OrderID = orderID
	}
	return r.db.WithContext(ctx).Create(&lines).Error
}

// 保存済みの明細を読み直す。書籍名は結合で取る
func (r *OrderLineGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderLineView, error) {
	lines := []model.OrderLineView{}
	err := r.db.WithContext(ctx).
		Table("order_lines").
		Select("order_lines.isbn, COALESCE(books.title, '') AS title, COALESCE(books.author, '') AS author, order_lines.quantity, order_lines.unit_price, order_lines.amount").
		Joins("left join books on books.isbn = order_lines.isbn").
		Where("order_lines.order_id = ?", orderID).
		Order("order_lines.id asc").
		Scan(&lines).Error
	if err != nil {
		return []model.OrderLineView{}, err
	}
	return lines, nil
}
