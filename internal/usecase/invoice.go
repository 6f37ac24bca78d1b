package usecase

import (
	"context"
	"time"

	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"

	"github.com/shopspring/decimal"
)

// 注文日から配達予定日まで
const deliveryDays = 7

type InvoiceAddress struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

type InvoiceLine struct {
	ISBN     string          `json:"isbn"`
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// 請求書のview-model
type InvoiceOutput struct {
	OrderID   int64           `json:"order_id"`
	OrderDate time.Time       `json:"order_date"`
	DueDate   time.Time       `json:"due_date"`
	Address   InvoiceAddress  `json:"address"`
	Lines     []InvoiceLine   `json:"lines"`
	Total     decimal.Decimal `json:"total"`
}

// 保存済みの明細を読み直して合計を出す（メモリ上の値は使わない）
func buildInvoice(ctx context.Context, lines repo.OrderLineRepository, o model.Order) (InvoiceOutput, error) {
	persisted, err := lines.ListByOrderID(ctx, o.ID)
	if err != nil {
		return InvoiceOutput{}, err
	}

	out := InvoiceOutput{
		OrderID:   o.ID,
		OrderDate: o.OrderedAt,
		DueDate:   o.OrderedAt.AddDate(0, 0, deliveryDays),
		Address: InvoiceAddress{
			FirstName:  o.ShipFirstName,
			LastName:   o.ShipLastName,
			Street:     o.ShipStreet,
			City:       o.ShipCity,
			PostalCode: o.ShipPostalCode,
		},
		Lines: make([]InvoiceLine, 0, len(persisted)),
		Total: decimal.Zero,
	}
	for _, l := range persisted {
		out.Lines = append(out.Lines, InvoiceLine{
			ISBN:     l.ISBN,
			Title:    l.Title,
			Author:   l.Author,
			Price:    l.UnitPrice,
			Quantity: l.Quantity,
			Amount:   l.Amount,
		})
		out.Total = out.Total.Add(l.Amount)
	}
	return out, nil
}
