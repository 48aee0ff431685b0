package usecase

import (
	"context"
	"errors"
	"testing"

	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/usecase/interfaces"
	mock_interfaces "lista_presentes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestGiftUseCase_List(t *testing.T) {
	all := []entities.Gift{
		{ID: "g1", Nome: "Jogo de panelas", Ativo: true, Status: entities.GiftStatusDisponivel},
		{ID: "g2", Nome: "Aspirador", Ativo: false, Status: entities.GiftStatusDisponivel},
	}

	t.Run("public list hides inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return(all, nil)

		uc := NewGiftUseCase(repo)
		gifts, err := uc.List(context.Background(), false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(gifts) != 1 || gifts[0].ID != "g1" {
			t.Fatalf("expected only g1, got %v", gifts)
		}
	})

	t.Run("admin list includes inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return(all, nil)

		uc := NewGiftUseCase(repo)
		gifts, err := uc.List(context.Background(), true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(gifts) != 2 {
			t.Fatalf("expected both gifts, got %d", len(gifts))
		}
	})
}

func TestGiftUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewGiftUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidGiftID) {
			t.Fatalf("expected ErrInvalidGiftID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Gift{}, nil)

		uc := NewGiftUseCase(repo)
		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrGiftNotFound) {
			t.Fatalf("expected ErrGiftNotFound, got %v", err)
		}
	})
}

func TestGiftUseCase_ReservePhysical(t *testing.T) {
	buyer := entities.PurchaseInfo{Nome: "Maria", Familia: "noiva"}

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		repo.EXPECT().
			UpdateStatusIf(gomock.Any(), "g1", entities.GiftStatusDisponivel, entities.GiftStatusComprado, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, _, next entities.GiftStatus, b *entities.PurchaseInfo) (entities.Gift, error) {
				if b == nil || b.TipoPagamento != entities.ContributionFisico {
					t.Fatalf("expected fisico buyer, got %v", b)
				}
				if b.DataConfirmacao.IsZero() {
					t.Fatal("expected confirmation timestamp")
				}
				return entities.Gift{ID: id, Status: next, CompradoPor: b}, nil
			})

		uc := NewGiftUseCase(repo)
		g, err := uc.ReservePhysical(context.Background(), "g1", buyer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Status != entities.GiftStatusComprado {
			t.Fatalf("expected comprado, got %s", g.Status)
		}
	})

	t.Run("missing buyer name", func(t *testing.T) {
		uc := NewGiftUseCase(nil)
		_, err := uc.ReservePhysical(context.Background(), "g1", entities.PurchaseInfo{})
		if !errors.Is(err, ErrInvalidBuyer) {
			t.Fatalf("expected ErrInvalidBuyer, got %v", err)
		}
	})

	t.Run("lost race maps to not available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		repo.EXPECT().
			UpdateStatusIf(gomock.Any(), "g1", entities.GiftStatusDisponivel, entities.GiftStatusComprado, gomock.Any()).
			Return(entities.Gift{}, interfaces.ErrStatusConflict)
		repo.EXPECT().GetByID(gomock.Any(), "g1").
			Return(entities.Gift{ID: "g1", Status: entities.GiftStatusComprado, CompradoPor: &entities.PurchaseInfo{Nome: "Outro"}}, nil)

		uc := NewGiftUseCase(repo)
		_, err := uc.ReservePhysical(context.Background(), "g1", buyer)
		if !errors.Is(err, ErrGiftNotAvailable) {
			t.Fatalf("expected ErrGiftNotAvailable, got %v", err)
		}
	})

	t.Run("conflict on missing gift maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		repo.EXPECT().
			UpdateStatusIf(gomock.Any(), "ghost", entities.GiftStatusDisponivel, entities.GiftStatusComprado, gomock.Any()).
			Return(entities.Gift{}, interfaces.ErrStatusConflict)
		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Gift{}, nil)

		uc := NewGiftUseCase(repo)
		_, err := uc.ReservePhysical(context.Background(), "ghost", buyer)
		if !errors.Is(err, ErrGiftNotFound) {
			t.Fatalf("expected ErrGiftNotFound, got %v", err)
		}
	})
}

func TestGiftUseCase_RemoveReservation(t *testing.T) {
	t.Run("happy path clears buyer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		repo.EXPECT().
			UpdateStatusIf(gomock.Any(), "g1", entities.GiftStatusComprado, entities.GiftStatusDisponivel, nil).
			Return(entities.Gift{ID: "g1", Status: entities.GiftStatusDisponivel}, nil)

		uc := NewGiftUseCase(repo)
		g, err := uc.RemoveReservation(context.Background(), "g1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.CompradoPor != nil {
			t.Fatal("expected buyer cleared")
		}
	})

	t.Run("not purchased", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		repo.EXPECT().
			UpdateStatusIf(gomock.Any(), "g1", entities.GiftStatusComprado, entities.GiftStatusDisponivel, nil).
			Return(entities.Gift{}, interfaces.ErrStatusConflict)
		repo.EXPECT().GetByID(gomock.Any(), "g1").
			Return(entities.Gift{ID: "g1", Status: entities.GiftStatusDisponivel}, nil)

		uc := NewGiftUseCase(repo)
		_, err := uc.RemoveReservation(context.Background(), "g1")
		if !errors.Is(err, ErrGiftNotPurchased) {
			t.Fatalf("expected ErrGiftNotPurchased, got %v", err)
		}
	})
}

func TestGiftUseCase_Upsert(t *testing.T) {
	t.Run("generates id and derives tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g entities.Gift) (entities.Gift, error) {
				if g.ID == "" {
					t.Fatal("expected generated id")
				}
				if g.Status != entities.GiftStatusDisponivel {
					t.Fatalf("expected disponivel, got %s", g.Status)
				}
				if g.FaixaPreco != entities.PriceTierMedio {
					t.Fatalf("expected tier medio for R$ 199,99, got %s", g.FaixaPreco)
				}
				return g, nil
			})

		uc := NewGiftUseCase(repo)
		_, err := uc.Upsert(context.Background(), entities.Gift{Nome: "Cafeteira", PrecoEstimado: "R$ 199,99"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		uc := NewGiftUseCase(nil)
		_, err := uc.Upsert(context.Background(), entities.Gift{})
		if !errors.Is(err, ErrInvalidGiftPayload) {
			t.Fatalf("expected ErrInvalidGiftPayload, got %v", err)
		}
	})
}

func TestGiftUseCase_ConfirmReceived(t *testing.T) {
	t.Run("requires comprado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "g1").
			Return(entities.Gift{ID: "g1", Status: entities.GiftStatusDisponivel}, nil)

		uc := NewGiftUseCase(repo)
		_, err := uc.ConfirmReceived(context.Background(), "g1", true)
		if !errors.Is(err, ErrGiftNotPurchased) {
			t.Fatalf("expected ErrGiftNotPurchased, got %v", err)
		}
	})

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		purchased := entities.Gift{ID: "g1", Status: entities.GiftStatusComprado, CompradoPor: &entities.PurchaseInfo{Nome: "Ana"}}
		repo.EXPECT().GetByID(gomock.Any(), "g1").Return(purchased, nil)
		confirmed := purchased
		confirmed.CompradoPor = &entities.PurchaseInfo{Nome: "Ana", RecebidoConfirmado: true}
		repo.EXPECT().SetReceived(gomock.Any(), "g1", true).Return(confirmed, nil)

		uc := NewGiftUseCase(repo)
		g, err := uc.ConfirmReceived(context.Background(), "g1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.CompradoPor == nil || !g.CompradoPor.RecebidoConfirmado {
			t.Fatal("expected recebido_confirmado set")
		}
	})
}
