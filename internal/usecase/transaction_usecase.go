package usecase

import (
	"context"
	"strings"

	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/usecase/interfaces"
)

// ITransactionUseCase exposes read-only ledger lookups for the admin UI and
// the guest return page.

type ITransactionUseCase interface {
	GetByCode(ctx context.Context, code string) (entities.Transaction, error)
	LatestByGiftID(ctx context.Context, giftID string) (entities.Transaction, error)
	List(ctx context.Context) ([]entities.Transaction, error)
}

type TransactionUseCase struct {
	repo interfaces.ITransactionRepository
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(repo interfaces.ITransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

func (u *TransactionUseCase) GetByCode(ctx context.Context, code string) (entities.Transaction, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	t, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.TransactionCode == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}

func (u *TransactionUseCase) LatestByGiftID(ctx context.Context, giftID string) (entities.Transaction, error) {
	giftID = strings.TrimSpace(giftID)
	if giftID == "" {
		return entities.Transaction{}, ErrInvalidGiftID
	}
	t, err := u.repo.LatestByGiftID(ctx, giftID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.TransactionCode == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}

func (u *TransactionUseCase) List(ctx context.Context) ([]entities.Transaction, error) {
	return u.repo.List(ctx)
}
