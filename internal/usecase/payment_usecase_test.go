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

func validCheckoutInput() CheckoutInput {
	return CheckoutInput{
		GiftID:        "g1",
		BuyerName:     "Maria Silva",
		BuyerEmail:    "maria@example.com",
		BuyerTaxID:    "123.456.789-09",
		PaymentMethod: "pix",
	}
}

func availableGift() entities.Gift {
	return entities.Gift{
		ID:            "g1",
		Nome:          "Cafeteira",
		PrecoEstimado: "R$ 199,99",
		Ativo:         true,
		Status:        entities.GiftStatusDisponivel,
	}
}

func TestPaymentUseCase_BeginCheckout_Validations(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		in := validCheckoutInput()
		in.BuyerEmail = ""
		_, err := uc.BeginCheckout(context.Background(), in)
		if !errors.Is(err, ErrInvalidCheckout) {
			t.Fatalf("expected ErrInvalidCheckout, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.BeginCheckout(context.Background(), validCheckoutInput())
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("gift not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gifts := mock_interfaces.NewMockIGiftRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gifts.EXPECT().GetByID(gomock.Any(), "g1").Return(entities.Gift{}, nil)

		uc := NewPaymentUseCase(gifts, nil, gateway)
		_, err := uc.BeginCheckout(context.Background(), validCheckoutInput())
		if !errors.Is(err, ErrGiftNotFound) {
			t.Fatalf("expected ErrGiftNotFound, got %v", err)
		}
	})

	t.Run("unparsable price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gifts := mock_interfaces.NewMockIGiftRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		g := availableGift()
		g.PrecoEstimado = "a combinar"
		gifts.EXPECT().GetByID(gomock.Any(), "g1").Return(g, nil)

		uc := NewPaymentUseCase(gifts, nil, gateway)
		_, err := uc.BeginCheckout(context.Background(), validCheckoutInput())
		if !errors.Is(err, ErrInvalidCheckout) {
			t.Fatalf("expected ErrInvalidCheckout, got %v", err)
		}
	})
}

func TestPaymentUseCase_BeginCheckout(t *testing.T) {
	t.Run("happy path locks then records ledger row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gifts := mock_interfaces.NewMockIGiftRepository(ctrl)
		transactions := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		gifts.EXPECT().GetByID(gomock.Any(), "g1").Return(availableGift(), nil)
		gifts.EXPECT().
			UpdateStatusIf(gomock.Any(), "g1", entities.GiftStatusDisponivel, entities.GiftStatusProcessando, nil).
			Return(entities.Gift{ID: "g1", Status: entities.GiftStatusProcessando}, nil)
		gateway.EXPECT().
			CreateCheckout(gomock.Any(), "g1", "Cafeteira", int64(19999), interfaces.CheckoutBuyer{
				Name:  "Maria Silva",
				Email: "maria@example.com",
				TaxID: "12345678909",
			}).
			Return(interfaces.CheckoutCreated{CheckoutID: "CHEC_123", CheckoutURL: "https://pagbank/pay/CHEC_123"}, nil)
		transactions.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.TransactionCode != "CHEC_123" || tx.GiftID != "g1" {
					t.Fatalf("unexpected ledger row %+v", tx)
				}
				if tx.Amount != 19999 || tx.Status != entities.TransactionStatusProcessing {
					t.Fatalf("unexpected amount/status %+v", tx)
				}
				return tx, nil
			})

		uc := NewPaymentUseCase(gifts, transactions, gateway)
		out, err := uc.BeginCheckout(context.Background(), validCheckoutInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CheckoutURL != "https://pagbank/pay/CHEC_123" || out.TransactionCode != "CHEC_123" {
			t.Fatalf("unexpected output %+v", out)
		}
	})

	t.Run("lost lock answers not available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gifts := mock_interfaces.NewMockIGiftRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		gifts.EXPECT().GetByID(gomock.Any(), "g1").Return(availableGift(), nil)
		gifts.EXPECT().
			UpdateStatusIf(gomock.Any(), "g1", entities.GiftStatusDisponivel, entities.GiftStatusProcessando, nil).
			Return(entities.Gift{}, interfaces.ErrStatusConflict)

		uc := NewPaymentUseCase(gifts, nil, gateway)
		_, err := uc.BeginCheckout(context.Background(), validCheckoutInput())
		if !errors.Is(err, ErrGiftNotAvailable) {
			t.Fatalf("expected ErrGiftNotAvailable, got %v", err)
		}
	})

	t.Run("ledger failure releases the lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gifts := mock_interfaces.NewMockIGiftRepository(ctrl)
		transactions := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		gifts.EXPECT().GetByID(gomock.Any(), "g1").Return(availableGift(), nil)
		gifts.EXPECT().
			UpdateStatusIf(gomock.Any(), "g1", entities.GiftStatusDisponivel, entities.GiftStatusProcessando, nil).
			Return(entities.Gift{ID: "g1", Status: entities.GiftStatusProcessando}, nil)
		gateway.EXPECT().
			CreateCheckout(gomock.Any(), "g1", "Cafeteira", int64(19999), gomock.Any()).
			Return(interfaces.CheckoutCreated{CheckoutID: "CHEC_123", CheckoutURL: "https://pagbank/pay/CHEC_123"}, nil)
		ledgerErr := errors.New("table unreachable")
		transactions.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Transaction{}, ledgerErr)
		// Without a row the janitor can never find the lock, so it must be
		// released before the error surfaces.
		gifts.EXPECT().
			UpdateStatusIf(gomock.Any(), "g1", entities.GiftStatusProcessando, entities.GiftStatusDisponivel, nil).
			Return(entities.Gift{ID: "g1", Status: entities.GiftStatusDisponivel}, nil)

		uc := NewPaymentUseCase(gifts, transactions, gateway)
		_, err := uc.BeginCheckout(context.Background(), validCheckoutInput())
		if !errors.Is(err, ledgerErr) {
			t.Fatalf("expected the ledger error, got %v", err)
		}
	})

	t.Run("gateway failure releases the lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gifts := mock_interfaces.NewMockIGiftRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		gifts.EXPECT().GetByID(gomock.Any(), "g1").Return(availableGift(), nil)
		gifts.EXPECT().
			UpdateStatusIf(gomock.Any(), "g1", entities.GiftStatusDisponivel, entities.GiftStatusProcessando, nil).
			Return(entities.Gift{ID: "g1", Status: entities.GiftStatusProcessando}, nil)
		gateway.EXPECT().
			CreateCheckout(gomock.Any(), "g1", "Cafeteira", int64(19999), gomock.Any()).
			Return(interfaces.CheckoutCreated{}, interfaces.ErrGatewayUnavailable)
		gifts.EXPECT().
			UpdateStatusIf(gomock.Any(), "g1", entities.GiftStatusProcessando, entities.GiftStatusDisponivel, nil).
			Return(entities.Gift{ID: "g1", Status: entities.GiftStatusDisponivel}, nil)

		uc := NewPaymentUseCase(gifts, nil, gateway)
		_, err := uc.BeginCheckout(context.Background(), validCheckoutInput())
		if !errors.Is(err, interfaces.ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})
}

func TestPaymentUseCase_Refund(t *testing.T) {
	paidTx := entities.Transaction{
		ID:              "t1",
		TransactionCode: "CHEC_123",
		ChargeID:        "CHAR_9",
		GiftID:          "g1",
		Amount:          19999,
		Status:          entities.TransactionStatusPaid,
	}

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transactions := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		transactions.EXPECT().GetByCode(gomock.Any(), "CHEC_123").Return(paidTx, nil)
		gateway.EXPECT().CancelCharge(gomock.Any(), "CHAR_9", int64(19999)).
			Return(interfaces.GatewayCharge{ID: "CHAR_9", Status: "CANCELED", TotalAmount: 19999, Refunded: 19999}, nil)
		refunded := paidTx
		refunded.Status = entities.TransactionStatusRefunded
		transactions.EXPECT().
			UpdateByCode(gomock.Any(), "CHEC_123", interfaces.TransactionUpdate{
				Status:   entities.TransactionStatusRefunded,
				ChargeID: "CHAR_9",
			}).
			Return(refunded, nil)

		uc := NewPaymentUseCase(nil, transactions, gateway)
		out, err := uc.Refund(context.Background(), "CHEC_123", 19999)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.RefundedAmount != 19999 || out.Transaction.Status != entities.TransactionStatusRefunded {
			t.Fatalf("unexpected output %+v", out)
		}
	})

	t.Run("only paid rows are refundable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transactions := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		pending := paidTx
		pending.Status = entities.TransactionStatusProcessing
		transactions.EXPECT().GetByCode(gomock.Any(), "CHEC_123").Return(pending, nil)

		uc := NewPaymentUseCase(nil, transactions, gateway)
		_, err := uc.Refund(context.Background(), "CHEC_123", 19999)
		if !errors.Is(err, ErrTransactionNotPaid) {
			t.Fatalf("expected ErrTransactionNotPaid, got %v", err)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transactions := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		transactions.EXPECT().GetByCode(gomock.Any(), "nope").Return(entities.Transaction{}, nil)

		uc := NewPaymentUseCase(nil, transactions, gateway)
		_, err := uc.Refund(context.Background(), "nope", 100)
		if !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("already refunded passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transactions := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		transactions.EXPECT().GetByCode(gomock.Any(), "CHEC_123").Return(paidTx, nil)
		gateway.EXPECT().CancelCharge(gomock.Any(), "CHAR_9", int64(19999)).
			Return(interfaces.GatewayCharge{}, interfaces.ErrAlreadyRefunded)

		uc := NewPaymentUseCase(nil, transactions, gateway)
		_, err := uc.Refund(context.Background(), "CHEC_123", 19999)
		if !errors.Is(err, interfaces.ErrAlreadyRefunded) {
			t.Fatalf("expected ErrAlreadyRefunded, got %v", err)
		}
	})

	t.Run("resolves charge id through checkout when missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transactions := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		noCharge := paidTx
		noCharge.ChargeID = ""
		transactions.EXPECT().GetByCode(gomock.Any(), "CHEC_123").Return(noCharge, nil)
		gateway.EXPECT().FetchCheckout(gomock.Any(), "CHEC_123").
			Return(interfaces.GatewayCheckout{ID: "CHEC_123", OrderIDs: []string{"ORDE_1"}}, nil)
		gateway.EXPECT().FetchOrder(gomock.Any(), "ORDE_1").
			Return(interfaces.GatewayOrder{ID: "ORDE_1", Charges: []interfaces.GatewayCharge{{ID: "CHAR_7", Status: "PAID"}}}, nil)
		gateway.EXPECT().CancelCharge(gomock.Any(), "CHAR_7", int64(19999)).
			Return(interfaces.GatewayCharge{ID: "CHAR_7", Refunded: 19999, TotalAmount: 19999}, nil)
		transactions.EXPECT().UpdateByCode(gomock.Any(), "CHEC_123", gomock.Any()).
			Return(noCharge, nil)

		uc := NewPaymentUseCase(nil, transactions, gateway)
		out, err := uc.Refund(context.Background(), "CHEC_123", 19999)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ChargeID != "CHAR_7" {
			t.Fatalf("expected CHAR_7, got %s", out.ChargeID)
		}
	})
}
