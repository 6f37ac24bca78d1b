package usecase

import "time"

// 現在の時間
type Clock interface {
	Now() time.Time
}

// チェックアウトトークン等のIDを作る約束
type IDGenerator interface {
	NewID() string
}
