package repository

import (
	"bookstore/internal/domain/model"
	"context"
)

// 会員の保存・取得を約束
type MemberRepository interface {
	//新規会員作成（IDが埋まる）
	Create(ctx context.Context, member *model.Member) error
	FindByID(ctx context.Context, memberID int64) (model.Member, error)
	FindByEmail(ctx context.Context, email string) (model.Member, error)
	// 行ロックを取って取得する。Tx内でのみ意味がある
	LockByID(ctx context.Context, memberID int64) (model.Member, error)
}
