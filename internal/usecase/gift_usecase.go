package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/usecase/interfaces"
	"lista_presentes/pkg"

	"github.com/google/uuid"
)

var (
	ErrGiftNotFound       = errors.New("gift not found")
	ErrGiftNotAvailable   = errors.New("gift not available")
	ErrGiftNotPurchased   = errors.New("gift not purchased")
	ErrInvalidGiftID      = errors.New("invalid gift id")
	ErrInvalidGiftPayload = errors.New("invalid gift payload")
	ErrInvalidBuyer       = errors.New("invalid buyer info")
)

// IGiftUseCase exposes catalog and gift state machine operations.
//
// Reservation correctness depends on every status write going through the
// repository's conditional update; this usecase never read-merge-writes
// the status field.

type IGiftUseCase interface {
	List(ctx context.Context, includeInactive bool) ([]entities.Gift, error)
	GetByID(ctx context.Context, id string) (entities.Gift, error)
	ReservePhysical(ctx context.Context, giftID string, buyer entities.PurchaseInfo) (entities.Gift, error)
	RemoveReservation(ctx context.Context, giftID string) (entities.Gift, error)
	SetObtained(ctx context.Context, giftID string, obtained bool) (entities.Gift, error)
	SetVisibility(ctx context.Context, giftID string, active bool) (entities.Gift, error)
	ConfirmReceived(ctx context.Context, giftID string, received bool) (entities.Gift, error)
	Upsert(ctx context.Context, g entities.Gift) (entities.Gift, error)
	ReplaceAll(ctx context.Context, gifts []entities.Gift) ([]entities.Gift, error)
	Delete(ctx context.Context, giftID string) error
}

type GiftUseCase struct {
	repo interfaces.IGiftRepository
}

var _ IGiftUseCase = (*GiftUseCase)(nil)

func NewGiftUseCase(repo interfaces.IGiftRepository) *GiftUseCase {
	return &GiftUseCase{repo: repo}
}

func (u *GiftUseCase) List(ctx context.Context, includeInactive bool) ([]entities.Gift, error) {
	gifts, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if includeInactive {
		return gifts, nil
	}
	visible := make([]entities.Gift, 0, len(gifts))
	for _, g := range gifts {
		if g.Ativo {
			visible = append(visible, g)
		}
	}
	return visible, nil
}

func (u *GiftUseCase) GetByID(ctx context.Context, id string) (entities.Gift, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Gift{}, ErrInvalidGiftID
	}

	g, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Gift{}, err
	}
	if g.ID == "" {
		return entities.Gift{}, ErrGiftNotFound
	}
	return g, nil
}

// ReservePhysical moves disponivel -> comprado directly; no gateway is
// involved for a physical pledge. The losing side of a concurrent
// reservation gets ErrGiftNotAvailable.
func (u *GiftUseCase) ReservePhysical(ctx context.Context, giftID string, buyer entities.PurchaseInfo) (entities.Gift, error) {
	giftID = strings.TrimSpace(giftID)
	if giftID == "" {
		return entities.Gift{}, ErrInvalidGiftID
	}
	if strings.TrimSpace(buyer.Nome) == "" {
		return entities.Gift{}, ErrInvalidBuyer
	}

	buyer.TipoPagamento = entities.ContributionFisico
	buyer.DataConfirmacao = time.Now().UTC()
	buyer.RecebidoConfirmado = false

	g, err := u.repo.UpdateStatusIf(ctx, giftID, entities.GiftStatusDisponivel, entities.GiftStatusComprado, &buyer)
	if err != nil {
		return entities.Gift{}, u.mapConflict(ctx, giftID, err)
	}
	log.Printf("[gift][usecase] physical reservation confirmed gift_id=%s buyer=%s", giftID, buyer.Nome)
	return g, nil
}

// RemoveReservation is the admin undo: comprado -> disponivel.
func (u *GiftUseCase) RemoveReservation(ctx context.Context, giftID string) (entities.Gift, error) {
	giftID = strings.TrimSpace(giftID)
	if giftID == "" {
		return entities.Gift{}, ErrInvalidGiftID
	}

	g, err := u.repo.UpdateStatusIf(ctx, giftID, entities.GiftStatusComprado, entities.GiftStatusDisponivel, nil)
	if err != nil {
		if errors.Is(err, interfaces.ErrStatusConflict) {
			if _, getErr := u.GetByID(ctx, giftID); getErr != nil {
				return entities.Gift{}, getErr
			}
			return entities.Gift{}, ErrGiftNotPurchased
		}
		return entities.Gift{}, err
	}
	log.Printf("[gift][usecase] reservation removed gift_id=%s", giftID)
	return g, nil
}

func (u *GiftUseCase) SetObtained(ctx context.Context, giftID string, obtained bool) (entities.Gift, error) {
	giftID = strings.TrimSpace(giftID)
	if giftID == "" {
		return entities.Gift{}, ErrInvalidGiftID
	}

	g, err := u.GetByID(ctx, giftID)
	if err != nil {
		return entities.Gift{}, err
	}

	next := entities.GiftStatusObtido
	if !obtained {
		next = entities.GiftStatusDisponivel
	}
	updated, err := u.repo.UpdateStatusIf(ctx, giftID, g.Status, next, nil)
	if err != nil {
		return entities.Gift{}, u.mapConflict(ctx, giftID, err)
	}
	return updated, nil
}

func (u *GiftUseCase) SetVisibility(ctx context.Context, giftID string, active bool) (entities.Gift, error) {
	giftID = strings.TrimSpace(giftID)
	if giftID == "" {
		return entities.Gift{}, ErrInvalidGiftID
	}

	g, err := u.repo.SetActive(ctx, giftID, active)
	if err != nil {
		return entities.Gift{}, err
	}
	if g.ID == "" {
		return entities.Gift{}, ErrGiftNotFound
	}
	return g, nil
}

func (u *GiftUseCase) ConfirmReceived(ctx context.Context, giftID string, received bool) (entities.Gift, error) {
	giftID = strings.TrimSpace(giftID)
	if giftID == "" {
		return entities.Gift{}, ErrInvalidGiftID
	}

	g, err := u.GetByID(ctx, giftID)
	if err != nil {
		return entities.Gift{}, err
	}
	if g.Status != entities.GiftStatusComprado {
		return entities.Gift{}, ErrGiftNotPurchased
	}

	updated, err := u.repo.SetReceived(ctx, giftID, received)
	if err != nil {
		return entities.Gift{}, err
	}
	if updated.ID == "" {
		return entities.Gift{}, ErrGiftNotFound
	}
	return updated, nil
}

// Upsert creates or updates a catalog entry. New gifts without an id get a
// generated one and start disponivel.
func (u *GiftUseCase) Upsert(ctx context.Context, g entities.Gift) (entities.Gift, error) {
	if strings.TrimSpace(g.Nome) == "" {
		return entities.Gift{}, ErrInvalidGiftPayload
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Status == "" {
		g.Status = entities.GiftStatusDisponivel
	}
	if g.FaixaPreco == "" && g.PrecoEstimado != "" {
		if cents, err := pkg.ParseBRL(g.PrecoEstimado); err == nil {
			g.FaixaPreco = entities.TierForCents(cents)
		}
	}
	if err := g.Validate(); err != nil {
		return entities.Gift{}, ErrInvalidGiftPayload
	}
	g.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, g)
}

// ReplaceAll seeds the catalog, replacing whatever is stored.
func (u *GiftUseCase) ReplaceAll(ctx context.Context, gifts []entities.Gift) ([]entities.Gift, error) {
	now := time.Now().UTC()
	for i := range gifts {
		if gifts[i].ID == "" {
			gifts[i].ID = uuid.NewString()
		}
		if gifts[i].Status == "" {
			gifts[i].Status = entities.GiftStatusDisponivel
		}
		if err := gifts[i].Validate(); err != nil {
			return nil, ErrInvalidGiftPayload
		}
		gifts[i].UpdatedAt = now
	}
	if err := u.repo.ReplaceAll(ctx, gifts); err != nil {
		return nil, err
	}
	log.Printf("[gift][usecase] catalog replaced count=%d", len(gifts))
	return gifts, nil
}

func (u *GiftUseCase) Delete(ctx context.Context, giftID string) error {
	giftID = strings.TrimSpace(giftID)
	if giftID == "" {
		return ErrInvalidGiftID
	}
	if _, err := u.GetByID(ctx, giftID); err != nil {
		return err
	}
	return u.repo.Delete(ctx, giftID)
}

// mapConflict distinguishes "row missing" from "race lost" after a failed
// conditional update.
func (u *GiftUseCase) mapConflict(ctx context.Context, giftID string, err error) error {
	if !errors.Is(err, interfaces.ErrStatusConflict) {
		return err
	}
	g, getErr := u.repo.GetByID(ctx, giftID)
	if getErr != nil {
		return getErr
	}
	if g.ID == "" {
		return ErrGiftNotFound
	}
	log.Printf("[gift][usecase] conditional update lost gift_id=%s current_status=%s", giftID, g.Status)
	return ErrGiftNotAvailable
}
