package model

import "time"

// 注文ヘッダ。作成後は更新・削除しない
// 配送先は注文時点の会員住所をコピーしておく
type Order struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID       int64     `gorm:"not null;index;uniqueIndex:idx_orders_member_token,priority:1" json:"member_id"`
	OrderedAt      time.Time `gorm:"not null" json:"ordered_at"`
	ShipFirstName  string    `gorm:"type:varchar(100);not null" json:"ship_first_name"`
	ShipLastName   string    `gorm:"type:varchar(100);not null" json:"ship_last_name"`
	ShipStreet     string    `gorm:"type:varchar(255);not null" json:"ship_street"`
	ShipCity       string    `gorm:"type:varchar(100);not null" json:"ship_city"`
	ShipPostalCode string    `gorm:"type:varchar(20);not null" json:"ship_postal_code"`
	// 二重送信防止キー（NULL可）
	CheckoutToken *string `gorm:"type:varchar(64);uniqueIndex:idx_orders_member_token,priority:2" json:"-"`
}

// 注文時点の住所をコピーする
func (o *Order) SnapshotAddress(m Member) {
	o.ShipFirstName = m.FirstName
	o.ShipLastName = m.LastName
	o.ShipStreet = m.Street
	o.ShipCity = m.City
	o.ShipPostalCode = m.PostalCode
}
