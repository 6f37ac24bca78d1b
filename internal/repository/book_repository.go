package repository

import (
	"bookstore/internal/domain/model"
	"context"
)

// 検索対象の列
type SearchField string

const (
	SearchByAuthor SearchField = "author"
	SearchByTitle  SearchField = "title"
)

func (f SearchField) Valid() bool {
	return f == SearchByAuthor || f == SearchByTitle
}

// 書籍カタログの読み取りだけを約束。
type BookRepository interface {
	// 重複なしの分類一覧（昇順）
	ListSubjects(ctx context.Context) ([]string, error)
	// 分類で絞ってタイトル順。total は分類全体の件数
	ListBySubject(ctx context.Context, subject string, page int, limit int) ([]model.Book, int64, error)
	// 著者/タイトルの部分一致（大文字小文字を区別しない）
	Search(ctx context.Context, field SearchField, term string, page int, limit int) ([]model.Book, int64, error)
	FindByISBN(ctx context.Context, isbn string) (model.Book, error)
}
