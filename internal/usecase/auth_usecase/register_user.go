package auth

import (
	"context"
	"errors"
	"strings"

	"bookstore/internal/domain/model"
	"bookstore/internal/repository"
	"bookstore/internal/usecase"

	"golang.org/x/crypto/bcrypt"
)

// 会員登録の入力
type RegisterInput struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Street     string
	City       string
	PostalCode string
	Phone      string
}

// 会員登録の出力（ハッシュは入らない）
type RegisterOutput struct {
	Member model.Member `json:"member"`
}

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// usecaseがValidatorに依存する約束
type MemberValidator interface {
	ValidateRegister(ctx context.Context, in RegisterInput) error
	ValidateLogin(ctx context.Context, email string, password string) error
}

// RegisterUsecaseは会員登録の処理。
type RegisterUsecase struct {
	members   repository.MemberRepository
	hasher    PasswordHasher
	validator MemberValidator
}

// DI
func NewRegisterUsecase(
	members repository.MemberRepository,
	hasher PasswordHasher,
	validator MemberValidator,
) *RegisterUsecase {
	return &RegisterUsecase{
		members:   members,
		hasher:    hasher,
		validator: validator,
	}
}

// 会員登録実行
func (u *RegisterUsecase) Execute(ctx context.Context, in RegisterInput) (RegisterOutput, error) {
	var out RegisterOutput

	in = trimRegister(in)
	if err := u.validator.ValidateRegister(ctx, in); err != nil {
		return out, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, &usecase.Error{Kind: usecase.KindInternal, Message: "something went wrong, please try again", Err: err}
	}

	member := model.Member{
		Email:        in.Email,
		PasswordHash: hashed, // 平文は保存しない
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Street:       in.Street,
		City:         in.City,
		PostalCode:   in.PostalCode,
		Phone:        in.Phone,
	}
	if err := u.members.Create(ctx, &member); err != nil {
		// 検証後に同じemailが入った
		if errors.Is(err, repository.ErrDuplicate) {
			return out, &usecase.Error{Kind: usecase.KindValidation, Message: "email is already registered"}
		}
		return out, &usecase.Error{Kind: usecase.KindInternal, Message: "something went wrong, please try again", Err: err}
	}

	member.PasswordHash = ""
	out.Member = member
	return out, nil
}

// パスワード以外は前後の空白を落とす
func trimRegister(in RegisterInput) RegisterInput {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Street = strings.TrimSpace(in.Street)
	in.City = strings.TrimSpace(in.City)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	in.Phone = strings.TrimSpace(in.Phone)
	return in
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
