package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/usecase/interfaces"
)

// StaleThreshold is how long a reservation may sit in processing before the
// janitor reclaims it.
const StaleThreshold = time.Hour

// ReconcileResult is what pollers and the webhook get back. Errors are
// folded into the result so client polling keeps going instead of aborting.
type ReconcileResult struct {
	TransactionCode string `json:"transactionCode"`
	Paid            bool   `json:"paid"`
	CheckoutStatus  string `json:"checkoutStatus,omitempty"`
	ChargeID        string `json:"chargeId,omitempty"`
	Amount          int64  `json:"amount,omitempty"`
	Error           string `json:"error,omitempty"`
}

// SweepItem is one row's outcome in a bulk sweep (pending check or janitor
// cleanup). Per-row failures never abort the sweep.
type SweepItem struct {
	TransactionCode string `json:"transactionCode"`
	GiftID          string `json:"giftId,omitempty"`
	Status          string `json:"status"`
	Detail          string `json:"detail,omitempty"`
}

// IReconcileUseCase maps gateway charge state onto gift + ledger state.

type IReconcileUseCase interface {
	CheckTransaction(ctx context.Context, transactionCode string) (ReconcileResult, error)
	CheckAllPending(ctx context.Context) ([]SweepItem, error)
	CleanupStale(ctx context.Context) ([]SweepItem, error)
}

type ReconcileUseCase struct {
	gifts        interfaces.IGiftRepository
	transactions interfaces.ITransactionRepository
	gateway      interfaces.IPaymentGateway
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(gifts interfaces.IGiftRepository, transactions interfaces.ITransactionRepository, gateway interfaces.IPaymentGateway) *ReconcileUseCase {
	return &ReconcileUseCase{gifts: gifts, transactions: transactions, gateway: gateway}
}

// CheckTransaction determines the true payment status of one checkout and
// drives the gift and ledger to match. Idempotent: running it twice against
// the same gateway state produces the same end state.
//
// Webhook deliveries funnel through here too; the webhook payload's status
// claims are never trusted, only the gateway's answers are.
func (u *ReconcileUseCase) CheckTransaction(ctx context.Context, transactionCode string) (ReconcileResult, error) {
	transactionCode = strings.TrimSpace(transactionCode)
	if transactionCode == "" {
		return ReconcileResult{}, ErrTransactionNotFound
	}
	if u.gateway == nil {
		log.Printf("[reconcile][usecase] gateway not configured code=%s", transactionCode)
		return ReconcileResult{TransactionCode: transactionCode, Paid: false, Error: ErrGatewayNotConfigured.Error()}, nil
	}

	checkout, err := u.gateway.FetchCheckout(ctx, transactionCode)
	if err != nil {
		// Transient tolerance: report, mutate nothing, let the poller retry.
		log.Printf("[reconcile][usecase] checkout fetch failed code=%s err=%v", transactionCode, err)
		return ReconcileResult{TransactionCode: transactionCode, Paid: false, Error: err.Error()}, nil
	}

	paid, order := u.findPaidCharge(ctx, checkout)
	result := ReconcileResult{
		TransactionCode: transactionCode,
		CheckoutStatus:  checkout.Status,
	}

	if paid == nil {
		// Keep the row in processing; nothing to apply yet.
		if _, err := u.transactions.UpdateByCode(ctx, transactionCode, interfaces.TransactionUpdate{Status: entities.TransactionStatusProcessing}); err != nil {
			log.Printf("[reconcile][usecase] ledger touch failed code=%s err=%v", transactionCode, err)
		}
		return result, nil
	}

	result.Paid = true
	result.ChargeID = paid.ID
	result.Amount = paid.Amount

	// The order's reference_id wins over the checkout's; the gateway copies
	// it from the checkout but the order is closer to the money.
	giftID := order.ReferenceID
	if giftID == "" {
		giftID = checkout.ReferenceID
	}
	tx, txErr := u.transactions.GetByCode(ctx, transactionCode)
	if txErr != nil {
		log.Printf("[reconcile][usecase] ledger lookup failed code=%s err=%v", transactionCode, txErr)
	}
	if giftID == "" {
		giftID = tx.GiftID
	}

	if giftID != "" {
		if err := u.confirmGift(ctx, giftID, tx.BuyerName, *paid); err != nil {
			log.Printf("[reconcile][usecase] gift confirmation failed gift_id=%s code=%s err=%v", giftID, transactionCode, err)
		}
	} else {
		log.Printf("[reconcile][usecase] paid charge without gift reference code=%s charge_id=%s", transactionCode, paid.ID)
	}

	if _, err := u.transactions.UpdateByCode(ctx, transactionCode, interfaces.TransactionUpdate{
		Status:        entities.TransactionStatusPaid,
		OrderID:       order.ID,
		ChargeID:      paid.ID,
		PaymentMethod: paid.PaymentMethod,
	}); err != nil {
		log.Printf("[reconcile][usecase] ledger update failed code=%s err=%v", transactionCode, err)
	}

	log.Printf("[reconcile][usecase] payment confirmed code=%s gift_id=%s charge_id=%s amount=%d method=%s",
		transactionCode, giftID, paid.ID, paid.Amount, paid.PaymentMethod)
	return result, nil
}

// findPaidCharge walks the checkout's orders in gateway response order and
// returns the first PAID charge together with its owning order (earliest
// order, earliest charge wins).
func (u *ReconcileUseCase) findPaidCharge(ctx context.Context, checkout interfaces.GatewayCheckout) (*interfaces.GatewayCharge, interfaces.GatewayOrder) {
	for _, orderID := range checkout.OrderIDs {
		order, err := u.gateway.FetchOrder(ctx, orderID)
		if err != nil {
			log.Printf("[reconcile][usecase] order fetch failed order_id=%s err=%v", orderID, err)
			continue
		}
		for i := range order.Charges {
			if order.Charges[i].Status == "PAID" {
				return &order.Charges[i], order
			}
		}
	}
	return nil, interfaces.GatewayOrder{}
}

// confirmGift lands processando_pagamento -> comprado with the contribution
// type derived from the charge's actual payment method. A gift already in
// comprado is a no-op; a gift still in disponivel (checkout created before
// the lock existed, or already released) is confirmed from there as well.
func (u *ReconcileUseCase) confirmGift(ctx context.Context, giftID, buyerName string, charge interfaces.GatewayCharge) error {
	if buyerName == "" {
		buyerName = "Anônimo"
	}
	buyer := entities.PurchaseInfo{
		Nome:            buyerName,
		TipoPagamento:   ContributionTypeForMethod(charge.PaymentMethod),
		DataConfirmacao: time.Now().UTC(),
	}

	_, err := u.gifts.UpdateStatusIf(ctx, giftID, entities.GiftStatusProcessando, entities.GiftStatusComprado, &buyer)
	if err == nil {
		return nil
	}
	if !errors.Is(err, interfaces.ErrStatusConflict) {
		return err
	}

	g, getErr := u.gifts.GetByID(ctx, giftID)
	if getErr != nil {
		return getErr
	}
	switch g.Status {
	case entities.GiftStatusComprado:
		// Already applied by an earlier poll or the webhook.
		return nil
	case entities.GiftStatusDisponivel:
		_, err := u.gifts.UpdateStatusIf(ctx, giftID, entities.GiftStatusDisponivel, entities.GiftStatusComprado, &buyer)
		return err
	default:
		return err
	}
}

// CheckAllPending runs every processing ledger row through the same
// reconciliation procedure.
func (u *ReconcileUseCase) CheckAllPending(ctx context.Context) ([]SweepItem, error) {
	pending, err := u.transactions.ListProcessing(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]SweepItem, 0, len(pending))
	for _, tx := range pending {
		res, err := u.CheckTransaction(ctx, tx.TransactionCode)
		item := SweepItem{TransactionCode: tx.TransactionCode, GiftID: tx.GiftID}
		switch {
		case err != nil:
			item.Status = "error"
			item.Detail = err.Error()
		case res.Error != "":
			item.Status = "error"
			item.Detail = res.Error
		case res.Paid:
			item.Status = "paid"
		default:
			item.Status = "pending"
		}
		items = append(items, item)
	}
	log.Printf("[reconcile][usecase] pending sweep done total=%d", len(items))
	return items, nil
}

// CleanupStale is the janitor: rows stuck in processing past the staleness
// threshold get their gift reverted to disponivel and the row deleted.
func (u *ReconcileUseCase) CleanupStale(ctx context.Context) ([]SweepItem, error) {
	cutoff := time.Now().UTC().Add(-StaleThreshold)
	stale, err := u.transactions.ListStale(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	items := make([]SweepItem, 0, len(stale))
	for _, tx := range stale {
		item := SweepItem{TransactionCode: tx.TransactionCode, GiftID: tx.GiftID}

		if tx.GiftID != "" {
			_, revErr := u.gifts.UpdateStatusIf(ctx, tx.GiftID, entities.GiftStatusProcessando, entities.GiftStatusDisponivel, nil)
			if revErr != nil && !errors.Is(revErr, interfaces.ErrStatusConflict) {
				item.Status = "error"
				item.Detail = revErr.Error()
				items = append(items, item)
				continue
			}
			// A conflict here means the gift already moved on (confirmed or
			// released); the stale row still gets discarded.
		}

		if err := u.transactions.DeleteByCode(ctx, tx.TransactionCode); err != nil {
			item.Status = "error"
			item.Detail = err.Error()
		} else {
			item.Status = "cleaned"
			log.Printf("[reconcile][usecase] stale reservation reclaimed code=%s gift_id=%s age=%s",
				tx.TransactionCode, tx.GiftID, time.Since(tx.CreatedAt).Truncate(time.Second))
		}
		items = append(items, item)
	}
	return items, nil
}

// ContributionTypeForMethod maps a gateway charge payment_method onto the
// contribution types shown in the registry.
func ContributionTypeForMethod(method string) string {
	switch strings.ToUpper(strings.TrimSpace(method)) {
	case "PIX":
		return entities.ContributionPix
	case "CREDIT_CARD", "DEBIT_CARD":
		return entities.ContributionCartao
	case "BOLETO":
		return entities.ContributionBoleto
	default:
		return entities.ContributionPix
	}
}
