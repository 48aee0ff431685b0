package interfaces

import (
	"context"
	"time"

	"lista_presentes/internal/domain/entities"
)

// TransactionUpdate carries the reconciliation fields written onto a ledger
// row once the true charge state is known. Empty strings leave the stored
// value untouched.
type TransactionUpdate struct {
	Status        entities.TransactionStatus
	OrderID       string
	ChargeID      string
	PaymentMethod string
}

// ITransactionRepository abstracts DynamoDB persistence for the payment
// attempt ledger. Rows are keyed by the gateway checkout id.
type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByCode(ctx context.Context, code string) (entities.Transaction, error)
	LatestByGiftID(ctx context.Context, giftID string) (entities.Transaction, error)
	List(ctx context.Context) ([]entities.Transaction, error)
	ListProcessing(ctx context.Context) ([]entities.Transaction, error)
	ListStale(ctx context.Context, olderThan time.Time) ([]entities.Transaction, error)
	UpdateByCode(ctx context.Context, code string, upd TransactionUpdate) (entities.Transaction, error)
	DeleteByCode(ctx context.Context, code string) error
}
