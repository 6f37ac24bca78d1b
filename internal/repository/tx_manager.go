package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Members() MemberRepository
	Books() BookRepository
	Carts() TxCartRepository
	Orders() OrderRepository
	OrderLines() OrderLineRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがerrorを返したら全部ロールバック
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
