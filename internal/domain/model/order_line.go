package model

import "github.com/shopspring/decimal"

// 注文明細。注文時点の単価と金額を保存する
type OrderLine struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"not null;index" json:"order_id"`
	ISBN      string          `gorm:"column:isbn;type:varchar(20);not null" json:"isbn"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
}

// 注文明細と書籍名を結合したもの
type OrderLineView struct {
	ISBN      string
	Title     string
	Author    string
	Quantity  int64
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal
}

// 金額 = 数量 × 単価
func LineAmount(unitPrice decimal.Decimal, qty int64) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(qty))
}
