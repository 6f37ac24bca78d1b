package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"
)

// チェックアウトトークンの上限
const maxCheckoutTokenLen = 64

// 同じトークンの注文が先に確定していた
var errDuplicateSubmit = errors.New("checkout token already used")

// CheckoutUsecase はカートを注文に変える。
// 全ステップを1つのTxで実行し、途中で失敗したら何も残さない
type CheckoutUsecase struct {
	tx    repo.TransactionManager
	carts repo.CartRepository
	clock Clock
	ids   IDGenerator
}

func NewCheckoutUsecase(tx repo.TransactionManager, carts repo.CartRepository, clock Clock, ids IDGenerator) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:    tx,
		carts: carts,
		clock: clock,
		ids:   ids,
	}
}

// 確認画面用。トークンは二重送信の判定に使う
type CheckoutSummaryOutput struct {
	Cart          CartOutput `json:"cart"`
	CheckoutToken string     `json:"checkout_token"`
}

func (u *CheckoutUsecase) Summary(ctx context.Context, memberID int64) (CheckoutSummaryOutput, error) {
	if memberID <= 0 {
		return CheckoutSummaryOutput{}, unauthorized(msgLoginToBuy)
	}

	lines, err := u.carts.ListByMember(ctx, memberID)
	if err != nil {
		return CheckoutSummaryOutput{}, internal(err)
	}
	return CheckoutSummaryOutput{
		Cart:          toCartOutput(lines),
		CheckoutToken: u.ids.NewID(),
	}, nil
}

// Checkout はカートを確定して請求書を返す。
// 受け取ったトークンの注文が既にあれば、新しく作らずその請求書を返す
func (u *CheckoutUsecase) Checkout(ctx context.Context, memberID int64, token string) (InvoiceOutput, error) {
	if memberID <= 0 {
		return InvoiceOutput{}, unauthorized(msgLoginToBuy)
	}
	token = strings.TrimSpace(token)
	if len(token) > maxCheckoutTokenLen {
		return InvoiceOutput{}, validation("checkout token is too long")
	}

	var out InvoiceOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 会員行ロック: 同じ会員のカート操作/チェックアウトはここで直列化
		member, err := r.Members().LockByID(ctx, memberID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return notFound("member not found", err)
			}
			return checkoutFailed(err)
		}

		if token != "" {
			existing, found, err := r.Orders().FindByCheckoutToken(ctx, memberID, token)
			if err != nil {
				return checkoutFailed(err)
			}
			if found {
				out, err = buildInvoice(ctx, r.OrderLines(), existing)
				if err != nil {
					return checkoutFailed(err)
				}
				return nil
			}
		}

		lines, err := r.Carts().ListByMember(ctx, memberID)
		if err != nil {
			return checkoutFailed(err)
		}
		if len(lines) == 0 {
			return emptyCart()
		}

		// 住所はこの時点の会員情報をコピー
		order := model.Order{
			MemberID:  memberID,
			OrderedAt: u.clock.Now(),
		}
		if token != "" {
			order.CheckoutToken = &token
		}
		order.SnapshotAddress(member)

		if err := r.Orders().Create(ctx, &order); err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				return errDuplicateSubmit
			}
			return checkoutFailed(err)
		}

		// 単価はチェックアウト時点の価格で固定
		orderLines := make([]model.OrderLine, 0, len(lines))
		for _, l := range lines {
			orderLines = append(orderLines, model.OrderLine{
				ISBN:      l.ISBN,
				Quantity:  l.Quantity,
				UnitPrice: l.Price,
				Amount:    model.LineAmount(l.Price, l.Quantity),
			})
		}
		if err := r.OrderLines().CreateBulk(ctx, order.ID, orderLines); err != nil {
			return checkoutFailed(err)
		}

		cleared, err := r.Carts().ClearByMember(ctx, memberID)
		if err != nil {
			return checkoutFailed(err)
		}
		if cleared != int64(len(lines)) {
			return checkoutFailed(fmt.Errorf("cart changed during checkout: expected %d lines, cleared %d", len(lines), cleared))
		}

		out, err = buildInvoice(ctx, r.OrderLines(), order)
		if err != nil {
			return checkoutFailed(err)
		}
		return nil
	})

	if errors.Is(err, errDuplicateSubmit) {
		// 競合で負けた側。Txは破棄済みなので読み直す
		return u.replay(ctx, memberID, token)
	}
	if err != nil {
		return InvoiceOutput{}, typed(err, checkoutFailed)
	}
	return out, nil
}

func (u *CheckoutUsecase) replay(ctx context.Context, memberID int64, token string) (InvoiceOutput, error) {
	var out InvoiceOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		existing, found, err := r.Orders().FindByCheckoutToken(ctx, memberID, token)
		if err != nil {
			return checkoutFailed(err)
		}
		if !found {
			return checkoutFailed(fmt.Errorf("order for token %q disappeared", token))
		}
		out, err = buildInvoice(ctx, r.OrderLines(), existing)
		if err != nil {
			return checkoutFailed(err)
		}
		return nil
	})
	if err != nil {
		return InvoiceOutput{}, typed(err, checkoutFailed)
	}
	return out, nil
}
