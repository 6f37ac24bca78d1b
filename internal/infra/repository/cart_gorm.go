package repository

import (
	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// 同一書籍は数量+1（INSERT ... ON CONFLICT DO UPDATE）
// MySQLでは ON DUPLICATE KEY UPDATE になる
func (r *CartGormRepository) Increment(ctx context.Context, memberID int64, isbn string) error {
	now := time.Now()
	line := model.CartLine{
		MemberID:  memberID,
		ISBN:      isbn,
		Quantity:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "member_id"}, {Name: "isbn"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_lines.quantity + ?", 1),
				"updated_at": now,
			}),
		}).
		Create(&line).Error
}

// 数量を1減らす。0になる明細は削除
func (r *CartGormRepository) Decrement(ctx context.Context, memberID int64, isbn string) (int64, error) {
	var remaining int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var line model.CartLine
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("member_id = ? AND isbn = ?", memberID, isbn).
			First(&line).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repo.ErrNotFound
		}
		if err != nil {
			return err
		}

		if line.Quantity <= 1 {
			remaining = 0
			return tx.Where("member_id = ? AND isbn = ?", memberID, isbn).Delete(&model.CartLine{}).Error
		}

		remaining = line.Quantity - 1
		return tx.Model(&model.CartLine{}).
			Where("member_id = ? AND isbn = ?", memberID, isbn).
			Updates(map[string]interface{}{
				"quantity":   remaining,
				"updated_at": time.Now(),
			}).Error
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

// カート明細を現在の書籍情報と結合して一覧取得
func (r *CartGormRepository) ListByMember(ctx context.Context, memberID int64) ([]model.CartLineView, error) {
	lines := []model.CartLineView{}

	err := r.db.WithContext(ctx).
		Table("cart_lines").
		Select("cart_lines.isbn, books.title, books.author, books.price, cart_lines.quantity").
		Joins("join books on books.isbn = cart_lines.isbn").
		Where("cart_lines.member_id = ?", memberID).
		Order("books.title asc").
		Order("cart_lines.isbn asc").
		Scan(&lines).Error
	if err != nil {
		return []model.CartLineView{}, err
	}
	return lines, nil
}

// 会員の明細を全削除して件数を返す
func (r *CartGormRepository) ClearByMember(ctx context.Context, memberID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Delete(&model.CartLine{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
