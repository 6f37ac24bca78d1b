package repository

import (
	"context"
	"testing"

	"bookstore/internal/domain/model"
	"bookstore/internal/infra/db"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	return db.OpenTest(t)
}

func book(isbn, subject, author, title, price string) model.Book {
	return model.Book{
		ISBN:    isbn,
		Subject: subject,
		Author:  author,
		Title:   title,
		Price:   decimal.RequireFromString(price),
	}
}

func seedBooks(t *testing.T, gormDB *gorm.DB, books ...model.Book) {
	t.Helper()
	require.NoError(t, gormDB.Create(&books).Error)
}

func seedMember(t *testing.T, gormDB *gorm.DB, email string) model.Member {
	t.Helper()
	m := model.Member{
		Email:        email,
		PasswordHash: "x",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Street:       "1 Analytical Way",
		City:         "London",
		PostalCode:   "12345",
	}
	require.NoError(t, NewMemberGormRepository(gormDB).Create(context.Background(), &m))
	return m
}
