package auth

import (
	"context"
	"errors"
	"strings"

	"bookstore/internal/repository"
	"bookstore/internal/usecase"
)

// 利用者にはどちらが違うか教えない
const msgWrongCredentials = "Wrong password or email, please try again."

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type LoginOutput struct {
	MemberID int64
}

type LoginUsecase struct {
	members   repository.MemberRepository
	verifier  PasswordVerifier
	validator MemberValidator
}

func NewLoginUsecase(
	members repository.MemberRepository,
	verifier PasswordVerifier,
	validator MemberValidator,
) *LoginUsecase {
	return &LoginUsecase{
		members:   members,
		verifier:  verifier,
		validator: validator,
	}
}

// ログイン処理。セッション発行はhandler側
func (u *LoginUsecase) Execute(ctx context.Context, email string, password string) (LoginOutput, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := u.validator.ValidateLogin(ctx, email, password); err != nil {
		return LoginOutput{}, err
	}

	member, err := u.members.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return LoginOutput{}, wrongCredentials()
		}
		return LoginOutput{}, &usecase.Error{Kind: usecase.KindInternal, Message: "something went wrong, please try again", Err: err}
	}

	if !u.verifier.Verify(password, member.PasswordHash) {
		return LoginOutput{}, wrongCredentials()
	}
	return LoginOutput{MemberID: member.ID}, nil
}

func wrongCredentials() error {
	return &usecase.Error{Kind: usecase.KindUnauthorized, Message: msgWrongCredentials}
}
