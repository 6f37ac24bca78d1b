package usecase

import (
	"context"
	"strings"

	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"
)

type CatalogUsecase struct {
	books    repo.BookRepository
	pageSize int
}

// DI
func NewCatalogUsecase(books repo.BookRepository, pageSize int) *CatalogUsecase {
	return &CatalogUsecase{
		books:    books,
		pageSize: pageSizeOrDefault(pageSize),
	}
}

type BookListOutput struct {
	Books          []model.Book `json:"books"`
	Subject        string       `json:"subject,omitempty"`
	SearchCriteria string       `json:"search_criteria,omitempty"`
	SearchInput    string       `json:"search_input,omitempty"`
	Page           Page         `json:"page"`
}

type SearchInput struct {
	Field string
	Term  string
	Page  int
}

func (u *CatalogUsecase) PageSize() int {
	return u.pageSize
}

func (u *CatalogUsecase) ListSubjects(ctx context.Context) ([]string, error) {
	subjects, err := u.books.ListSubjects(ctx)
	if err != nil {
		return []string{}, internal(err)
	}
	return subjects, nil
}

// 分類ごとの一覧。存在しない分類は空ページ（エラーにしない）
func (u *CatalogUsecase) PageBySubject(ctx context.Context, subject string, page int) (BookListOutput, error) {
	page = normalizePage(page)
	subject = strings.TrimSpace(subject)

	books, total, err := u.books.ListBySubject(ctx, subject, page, u.pageSize)
	if err != nil {
		return BookListOutput{}, internal(err)
	}

	return BookListOutput{
		Books:   books,
		Subject: subject,
		Page:    newPage(page, u.pageSize, total),
	}, nil
}

// 著者/タイトル検索。0件も正常系
func (u *CatalogUsecase) Search(ctx context.Context, in SearchInput) (BookListOutput, error) {
	field := repo.SearchField(strings.ToLower(strings.TrimSpace(in.Field)))
	if !field.Valid() {
		return BookListOutput{}, validation("search by author or title")
	}
	if len(in.Term) > 255 {
		return BookListOutput{}, validation("search text too long")
	}
	page := normalizePage(in.Page)

	books, total, err := u.books.Search(ctx, field, in.Term, page, u.pageSize)
	if err != nil {
		return BookListOutput{}, internal(err)
	}

	return BookListOutput{
		Books:          books,
		SearchCriteria: string(field),
		SearchInput:    in.Term,
		Page:           newPage(page, u.pageSize, total),
	}, nil
}
