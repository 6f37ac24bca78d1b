package validator

import (
	"context"
	"errors"
	"regexp"

	"bookstore/internal/repository"
	"bookstore/internal/usecase"
	auth "bookstore/internal/usecase/auth_usecase"
)

var (
	// 簡易メール形式
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// 郵便番号は数字のみ
	postalCodePattern = regexp.MustCompile(`^[0-9]{3,10}$`)
)

const minPasswordLen = 8

type memberValidator struct {
	members repository.MemberRepository
}

// Usecaseは interface を依存注入
func NewMemberValidator(members repository.MemberRepository) auth.MemberValidator {
	return &memberValidator{members: members}
}

// 会員登録の入力を検証
func (v *memberValidator) ValidateRegister(ctx context.Context, in auth.RegisterInput) error {
	// 必須チェック
	if in.Email == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" ||
		in.Street == "" || in.City == "" || in.PostalCode == "" {
		return invalid("all fields except phone are required")
	}
	if len(in.Email) > 255 || !emailPattern.MatchString(in.Email) {
		return invalid("email is not valid")
	}
	if !postalCodePattern.MatchString(in.PostalCode) {
		return invalid("postal code must be numeric")
	}
	if len(in.Password) < minPasswordLen {
		return invalid("password must be at least 8 characters")
	}

	// email重複チェック（DBが必要）
	_, err := v.members.FindByEmail(ctx, in.Email)
	if err == nil {
		return invalid("email is already registered")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return &usecase.Error{Kind: usecase.KindInternal, Message: "something went wrong, please try again", Err: err}
	}
	return nil
}

// ログインの入力を検証
func (v *memberValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	if email == "" || password == "" {
		return invalid("email and password are required")
	}
	if !emailPattern.MatchString(email) {
		return invalid("email is not valid")
	}
	return nil
}

func invalid(message string) error {
	return &usecase.Error{Kind: usecase.KindValidation, Message: message}
}
