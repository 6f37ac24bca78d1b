package usecase

import (
	"errors"
	"fmt"
)

// 失敗の種類。handlerがステータスやリダイレクトに変換する
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindNotFound
	KindValidation
	KindCheckoutFailed
	KindEmptyCart
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation_failed"
	case KindCheckoutFailed:
		return "checkout_failed"
	case KindEmptyCart:
		return "empty_cart"
	default:
		return "internal"
	}
}

// Error はusecaseが返す型付きの失敗。
// Message は利用者に見せてよい文言、Err はログ用の原因
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// 種類が同じなら errors.Is で一致させる
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrUnauthorized   = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
	ErrNotFound       = &Error{Kind: KindNotFound, Message: "not found"}
	ErrValidation     = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrCheckoutFailed = &Error{Kind: KindCheckoutFailed, Message: "checkout failed"}
	ErrEmptyCart      = &Error{Kind: KindEmptyCart, Message: "cart is empty"}
	ErrInternal       = &Error{Kind: KindInternal, Message: "internal error"}
)

func newError(kind Kind, message string, cause error) error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func unauthorized(message string) error {
	return newError(KindUnauthorized, message, nil)
}

func notFound(message string, cause error) error {
	return newError(KindNotFound, message, cause)
}

func validation(message string) error {
	return newError(KindValidation, message, nil)
}

func internal(cause error) error {
	return newError(KindInternal, "something went wrong, please try again", cause)
}

// *Error でなければ Internal 扱い
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindInternal
}

func checkoutFailed(cause error) error {
	return newError(KindCheckoutFailed, "Checkout failed, please try again.", cause)
}

func emptyCart() error {
	return newError(KindEmptyCart, "Your cart is empty.", nil)
}
