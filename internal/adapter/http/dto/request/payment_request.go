package request

import "strings"

// CheckoutRequest starts an online payment for a gift. The price charged
// comes from the stored catalog entry, never from the client.
type CheckoutRequest struct {
	GiftID          string `json:"gift_id" binding:"required"`
	Nome            string `json:"nome" binding:"required"`
	Email           string `json:"email" binding:"required"`
	CPF             string `json:"cpf" binding:"required"`
	MetodoPagamento string `json:"metodo_pagamento"`
}

// RefundRequest cancels the paid charge behind a ledger row. Amount is in
// cents; zero means refund the full charge.
type RefundRequest struct {
	TransactionCode string `json:"transaction_code" binding:"required"`
	Amount          int64  `json:"amount"`
}

// CheckStatusRequest asks for one transaction to be reconciled against the
// gateway right now.
type CheckStatusRequest struct {
	TransactionCode string `json:"transaction_code" binding:"required"`
}

// WebhookRequest is the gateway notification shape. Only the ids matter;
// the notification is a hint to reconcile, never trusted as payment proof.
type WebhookRequest struct {
	ID          string              `json:"id"`
	ReferenceID string              `json:"reference_id"`
	Checkout    *WebhookCheckout    `json:"checkout"`
	Charges     []WebhookChargeInfo `json:"charges"`
}

type WebhookCheckout struct {
	ID string `json:"id"`
}

type WebhookChargeInfo struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ResolveCheckoutID digs the checkout id out of whichever field the gateway
// put it in.
func (r WebhookRequest) ResolveCheckoutID() string {
	if r.Checkout != nil {
		if v := strings.TrimSpace(r.Checkout.ID); v != "" {
			return v
		}
	}
	if v := strings.TrimSpace(r.ID); strings.HasPrefix(v, "CHEC_") {
		return v
	}
	return ""
}
