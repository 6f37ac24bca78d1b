package repository

import (
	"context"
	"errors"

	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewMemberGormRepository(db *gorm.DB) *MemberGormRepository {
	return &MemberGormRepository{db: db}
}

// 会員を新規作成
func (r *MemberGormRepository) Create(ctx context.Context, member *model.Member) error {
	err := r.db.WithContext(ctx).Create(member).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repo.ErrDuplicate
	}
	return err
}

// IDで会員を1件取得
func (r *MemberGormRepository) FindByID(ctx context.Context, memberID int64) (model.Member, error) {
	var m model.Member
	err := r.db.WithContext(ctx).Where("id = ?", memberID).First(&m).Error
	return m, translate(err)
}

// emailで会員を1件取得
func (r *MemberGormRepository) FindByEmail(ctx context.Context, email string) (model.Member, error) {
	var m model.Member
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	return m, translate(err)
}

// 会員行を FOR UPDATE で取る。同じ会員のカート操作とチェックアウトを直列化する
func (r *MemberGormRepository) LockByID(ctx context.Context, memberID int64) (model.Member, error) {
	var m model.Member
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", memberID).
		First(&m).Error
	return m, translate(err)
}

// gormの未検出をrepo.ErrNotFoundに寄せる
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ErrNotFound
	}
	return err
}
