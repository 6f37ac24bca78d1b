package model

import "github.com/shopspring/decimal"

// 書籍。ISBNが主キーで、このシステムからは読み取りのみ
type Book struct {
	ISBN    string          `gorm:"column:isbn;primaryKey;type:varchar(20)" json:"isbn"`
	Subject string          `gorm:"type:varchar(100);not null;index" json:"subject"`
	Author  string          `gorm:"type:varchar(255);not null;index" json:"author"`
	Title   string          `gorm:"type:varchar(255);not null;index" json:"title"`
	Price   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}
