package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カートの明細。(member_id, isbn) で一意、quantityは常に1以上
// 0になる明細は残さず削除する
type CartLine struct {
	MemberID  int64     `gorm:"primaryKey;autoIncrement:false" json:"member_id"`
	ISBN      string    `gorm:"column:isbn;primaryKey;type:varchar(20)" json:"isbn"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// カート明細と現在の書籍情報を結合したもの
type CartLineView struct {
	ISBN     string
	Title    string
	Author   string
	Price    decimal.Decimal
	Quantity int64
}

// 現在価格での小計
func (v CartLineView) Amount() decimal.Decimal {
	return LineAmount(v.Price, v.Quantity)
}
