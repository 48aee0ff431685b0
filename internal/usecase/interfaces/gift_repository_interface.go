package interfaces

import (
	"context"
	"errors"

	"lista_presentes/internal/domain/entities"
)

// ErrStatusConflict is returned by conditional status updates when the gift
// is no longer in the expected status (reservation race lost, or the row
// was already moved by another writer).
var ErrStatusConflict = errors.New("gift status conflict")

// IGiftRepository abstracts DynamoDB persistence for Gift.
//
// Every status write is a conditional update keyed by (id, expected current
// status). Read-merge-write of the status field is deliberately not part of
// this port; the store is the only authority for reservation decisions.
type IGiftRepository interface {
	GetByID(ctx context.Context, id string) (entities.Gift, error)
	List(ctx context.Context) ([]entities.Gift, error)
	Save(ctx context.Context, g entities.Gift) (entities.Gift, error)

	// UpdateStatusIf swaps status from expected to next, writing (or
	// clearing, when nil) the buyer sub-record in the same update. Fails
	// with ErrStatusConflict when the row is absent or not in expected.
	UpdateStatusIf(ctx context.Context, id string, expected, next entities.GiftStatus, buyer *entities.PurchaseInfo) (entities.Gift, error)

	SetActive(ctx context.Context, id string, active bool) (entities.Gift, error)
	SetReceived(ctx context.Context, id string, received bool) (entities.Gift, error)
	ReplaceAll(ctx context.Context, gifts []entities.Gift) error
	Delete(ctx context.Context, id string) error
}
