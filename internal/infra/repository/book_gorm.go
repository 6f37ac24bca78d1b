package repository

import (
	"context"
	"fmt"
	"strings"

	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"

	"gorm.io/gorm"
)

type BookGormRepository struct {
	db *gorm.DB
}

// DI
func NewBookGormRepository(db *gorm.DB) *BookGormRepository {
	return &BookGormRepository{db: db}
}

// 分類の一覧（重複なし・昇順）
func (r *BookGormRepository) ListSubjects(ctx context.Context) ([]string, error) {
	subjects := []string{}
	err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Distinct("subject").
		Order("subject asc").
		Pluck("subject", &subjects).Error
	if err != nil {
		return []string{}, err
	}
	return subjects, nil
}

// 分類で絞ってタイトル順に1ページ分返す
func (r *BookGormRepository) ListBySubject(ctx context.Context, subject string, page int, limit int) ([]model.Book, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Book{}).Where("subject = ?", subject)
	return r.page(tx, page, limit)
}

// author/title の部分一致。大文字小文字は区別しない
func (r *BookGormRepository) Search(ctx context.Context, field repo.SearchField, term string, page int, limit int) ([]model.Book, int64, error) {
	if !field.Valid() {
		return []model.Book{}, 0, fmt.Errorf("invalid search field %q", field)
	}

	like := "%" + escapeLike(strings.ToLower(strings.TrimSpace(term))) + "%"
	// 列名はホワイトリスト済みの field だけ
	cond := fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '!'", string(field))

	tx := r.db.WithContext(ctx).Model(&model.Book{}).Where(cond, like)
	return r.page(tx, page, limit)
}

// ISBNで書籍を取得
func (r *BookGormRepository) FindByISBN(ctx context.Context, isbn string) (model.Book, error) {
	var b model.Book
	err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&b).Error
	return b, translate(err)
}

// total（件数）を数えてから offset/limit で取る
func (r *BookGormRepository) page(tx *gorm.DB, page int, limit int) ([]model.Book, int64, error) {
	// 件数と一覧で同じ条件を使い回す
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return []model.Book{}, 0, err
	}

	books := []model.Book{}
	offset, ok := pageOffset(page, limit)
	if !ok {
		return books, total, nil
	}
	if err := tx.Order("title asc").Order("isbn asc").Offset(offset).Limit(limit).Find(&books).Error; err != nil {
		return []model.Book{}, 0, err
	}
	return books, total, nil
}

// LIKE のワイルドカードを文字として扱う（エスケープ文字は !）
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
