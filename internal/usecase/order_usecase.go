package usecase

import (
	"context"
	"errors"
	"time"

	repo "bookstore/internal/repository"

	"github.com/shopspring/decimal"
)

// OrderUsecase は注文履歴の参照だけを持つ（書き込みはチェックアウト）
type OrderUsecase struct {
	tx       repo.TransactionManager
	pageSize int
}

func NewOrderUsecase(tx repo.TransactionManager, pageSize int) *OrderUsecase {
	return &OrderUsecase{tx: tx, pageSize: pageSizeOrDefault(pageSize)}
}

type OrderSummaryOutput struct {
	ID        int64           `json:"id"`
	OrderDate time.Time       `json:"order_date"`
	DueDate   time.Time       `json:"due_date"`
	Lines     int             `json:"lines"`
	Total     decimal.Decimal `json:"total"`
}

type OrderListOutput struct {
	Orders []OrderSummaryOutput `json:"orders"`
	Page   Page                 `json:"page"`
}

// 新しい順
func (u *OrderUsecase) ListMine(ctx context.Context, memberID int64, page int) (OrderListOutput, error) {
	if memberID <= 0 {
		return OrderListOutput{}, unauthorized("You need to log in to see your orders.")
	}
	page = normalizePage(page)

	var out OrderListOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().ListByMemberID(ctx, memberID, page, u.pageSize)
		if err != nil {
			return internal(err)
		}

		out.Orders = make([]OrderSummaryOutput, 0, len(orders))
		for _, o := range orders {
			inv, err := buildInvoice(ctx, r.OrderLines(), o)
			if err != nil {
				return internal(err)
			}
			out.Orders = append(out.Orders, OrderSummaryOutput{
				ID:        inv.OrderID,
				OrderDate: inv.OrderDate,
				DueDate:   inv.DueDate,
				Lines:     len(inv.Lines),
				Total:     inv.Total,
			})
		}
		out.Page = newPage(page, u.pageSize, total)
		return nil
	})
	if err != nil {
		return OrderListOutput{}, typed(err, internal)
	}
	return out, nil
}

// 請求書の再表示
func (u *OrderUsecase) Invoice(ctx context.Context, memberID int64, orderID int64) (InvoiceOutput, error) {
	if memberID <= 0 {
		return InvoiceOutput{}, unauthorized("You need to log in to see your orders.")
	}
	if orderID <= 0 {
		return InvoiceOutput{}, validation("invalid order id")
	}

	var out InvoiceOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("order not found", err)
		}
		if err != nil {
			return internal(err)
		}
		//他人の注文は存在しない扱い
		if o.MemberID != memberID {
			return notFound("order not found", nil)
		}

		out, err = buildInvoice(ctx, r.OrderLines(), o)
		if err != nil {
			return internal(err)
		}
		return nil
	})
	if err != nil {
		return InvoiceOutput{}, typed(err, internal)
	}
	return out, nil
}
