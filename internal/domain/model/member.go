package model

import "time"

// 会員。emailは一意、パスワードはハッシュのみ保存
type Member struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	FirstName    string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Street       string    `gorm:"type:varchar(255);not null" json:"street"`
	City         string    `gorm:"type:varchar(100);not null" json:"city"`
	PostalCode   string    `gorm:"type:varchar(20);not null" json:"postal_code"`
	Phone        string    `gorm:"type:varchar(30)" json:"phone"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
