package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrTransactionNotPaid   = errors.New("transaction not paid")
	ErrInvalidCheckout      = errors.New("invalid checkout request")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// CheckoutInput is the begin-online-payment command.
type CheckoutInput struct {
	GiftID        string
	BuyerName     string
	BuyerEmail    string
	BuyerTaxID    string
	PaymentMethod string
}

// CheckoutOutput hands the guest the gateway URL to finish payment in.
type CheckoutOutput struct {
	CheckoutURL     string
	TransactionCode string
	Transaction     entities.Transaction
}

// RefundOutput reports the gateway's authoritative post-refund figures.
type RefundOutput struct {
	Transaction    entities.Transaction
	RefundedAmount int64
	ChargeID       string
}

// IPaymentUseCase drives checkout creation and the admin refund flow.

type IPaymentUseCase interface {
	BeginCheckout(ctx context.Context, in CheckoutInput) (CheckoutOutput, error)
	Refund(ctx context.Context, transactionCode string, amountCents int64) (RefundOutput, error)
}

type PaymentUseCase struct {
	gifts        interfaces.IGiftRepository
	transactions interfaces.ITransactionRepository
	gateway      interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gifts interfaces.IGiftRepository, transactions interfaces.ITransactionRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{gifts: gifts, transactions: transactions, gateway: gateway}
}

// BeginCheckout locks the gift (disponivel -> processando_pagamento via the
// conditional update), creates the gateway checkout and records the ledger
// row. The amount sent to the gateway comes from the stored gift price, not
// the request.
func (u *PaymentUseCase) BeginCheckout(ctx context.Context, in CheckoutInput) (CheckoutOutput, error) {
	in.GiftID = strings.TrimSpace(in.GiftID)
	if in.GiftID == "" || strings.TrimSpace(in.BuyerName) == "" || strings.TrimSpace(in.BuyerEmail) == "" || strings.TrimSpace(in.BuyerTaxID) == "" {
		return CheckoutOutput{}, ErrInvalidCheckout
	}
	if u.gateway == nil {
		return CheckoutOutput{}, ErrGatewayNotConfigured
	}

	gift, err := u.gifts.GetByID(ctx, in.GiftID)
	if err != nil {
		return CheckoutOutput{}, err
	}
	if gift.ID == "" {
		return CheckoutOutput{}, ErrGiftNotFound
	}

	amountCents, err := gift.PriceCents()
	if err != nil || amountCents <= 0 {
		log.Printf("[payment][usecase] gift has no parsable price gift_id=%s preco=%q", gift.ID, gift.PrecoEstimado)
		return CheckoutOutput{}, ErrInvalidCheckout
	}

	// Lock first. Whoever lands this conditional update owns the gift;
	// everyone else gets the not-available answer.
	if _, err := u.gifts.UpdateStatusIf(ctx, gift.ID, entities.GiftStatusDisponivel, entities.GiftStatusProcessando, nil); err != nil {
		if errors.Is(err, interfaces.ErrStatusConflict) {
			return CheckoutOutput{}, ErrGiftNotAvailable
		}
		return CheckoutOutput{}, err
	}
	log.Printf("[payment][usecase] gift locked for checkout gift_id=%s buyer=%s method=%s", gift.ID, in.BuyerName, in.PaymentMethod)

	created, err := u.gateway.CreateCheckout(ctx, gift.ID, gift.Nome, amountCents, interfaces.CheckoutBuyer{
		Name:  in.BuyerName,
		Email: in.BuyerEmail,
		TaxID: sanitizeTaxID(in.BuyerTaxID),
	})
	if err != nil {
		// Release the lock so the gift is not stuck until the janitor.
		// Same CAS, so a concurrent confirmation cannot be stomped.
		if _, revErr := u.gifts.UpdateStatusIf(ctx, gift.ID, entities.GiftStatusProcessando, entities.GiftStatusDisponivel, nil); revErr != nil {
			log.Printf("[payment][usecase] failed releasing gift after gateway error gift_id=%s err=%v", gift.ID, revErr)
		}
		log.Printf("[payment][usecase] checkout creation failed gift_id=%s err=%v", gift.ID, err)
		return CheckoutOutput{}, err
	}

	now := time.Now().UTC()
	tx := entities.Transaction{
		ID:              uuid.NewString(),
		TransactionCode: created.CheckoutID,
		GiftID:          gift.ID,
		Amount:          amountCents,
		BuyerName:       in.BuyerName,
		BuyerEmail:      in.BuyerEmail,
		PaymentMethod:   in.PaymentMethod,
		Status:          entities.TransactionStatusProcessing,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	saved, err := u.transactions.Create(ctx, tx)
	if err != nil {
		// Without a ledger row neither the pending sweep nor the janitor can
		// ever find this attempt, so the lock must not outlive the request.
		// The guest never receives the URL, so the checkout goes unpaid.
		if _, revErr := u.gifts.UpdateStatusIf(ctx, gift.ID, entities.GiftStatusProcessando, entities.GiftStatusDisponivel, nil); revErr != nil {
			log.Printf("[payment][usecase] failed releasing gift after ledger error gift_id=%s err=%v", gift.ID, revErr)
		}
		log.Printf("[payment][usecase] ledger row create failed code=%s err=%v", created.CheckoutID, err)
		return CheckoutOutput{}, err
	}
	log.Printf("[payment][usecase] checkout created gift_id=%s code=%s amount=%d", gift.ID, created.CheckoutID, amountCents)

	return CheckoutOutput{
		CheckoutURL:     created.CheckoutURL,
		TransactionCode: created.CheckoutID,
		Transaction:     saved,
	}, nil
}

// Refund cancels the paid charge behind a ledger row and records the
// gateway's authoritative refunded amount. It deliberately does not touch
// the gift's status; releasing the gift is a separate admin action.
func (u *PaymentUseCase) Refund(ctx context.Context, transactionCode string, amountCents int64) (RefundOutput, error) {
	transactionCode = strings.TrimSpace(transactionCode)
	if transactionCode == "" {
		return RefundOutput{}, ErrTransactionNotFound
	}
	if u.gateway == nil {
		return RefundOutput{}, ErrGatewayNotConfigured
	}

	tx, err := u.transactions.GetByCode(ctx, transactionCode)
	if err != nil {
		return RefundOutput{}, err
	}
	if tx.TransactionCode == "" {
		return RefundOutput{}, ErrTransactionNotFound
	}
	if tx.Status != entities.TransactionStatusPaid {
		return RefundOutput{}, ErrTransactionNotPaid
	}

	chargeID := u.resolveChargeID(ctx, tx)
	log.Printf("[payment][usecase] refund start code=%s charge_id=%s amount=%d", transactionCode, chargeID, amountCents)

	charge, err := u.gateway.CancelCharge(ctx, chargeID, amountCents)
	if err != nil {
		return RefundOutput{}, err
	}

	updated, err := u.transactions.UpdateByCode(ctx, transactionCode, interfaces.TransactionUpdate{
		Status:   entities.TransactionStatusRefunded,
		ChargeID: chargeID,
	})
	if err != nil {
		// Refund went through at the gateway; report it even if the ledger
		// write failed.
		log.Printf("[payment][usecase] ledger update failed after refund code=%s err=%v", transactionCode, err)
		updated = tx
		updated.Status = entities.TransactionStatusRefunded
	}
	log.Printf("[payment][usecase] refund done code=%s refunded=%d", transactionCode, charge.Refunded)

	return RefundOutput{Transaction: updated, RefundedAmount: charge.Refunded, ChargeID: chargeID}, nil
}

// resolveChargeID prefers the ledger's stored charge id, then walks
// checkout -> order -> charge at the gateway, then degrades to the order id
// or the checkout code itself.
func (u *PaymentUseCase) resolveChargeID(ctx context.Context, tx entities.Transaction) string {
	if tx.ChargeID != "" {
		return tx.ChargeID
	}

	checkout, err := u.gateway.FetchCheckout(ctx, tx.TransactionCode)
	if err == nil {
		for _, orderID := range checkout.OrderIDs {
			order, err := u.gateway.FetchOrder(ctx, orderID)
			if err != nil {
				continue
			}
			if len(order.Charges) > 0 {
				return order.Charges[0].ID
			}
		}
	} else {
		log.Printf("[payment][usecase] charge lookup via checkout failed code=%s err=%v", tx.TransactionCode, err)
	}

	if tx.OrderID != "" {
		return tx.OrderID
	}
	return tx.TransactionCode
}

func sanitizeTaxID(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
