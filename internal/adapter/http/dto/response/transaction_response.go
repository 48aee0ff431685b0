package response

import (
	"time"

	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/usecase"
)

type TransactionResponse struct {
	ID              string    `json:"id"`
	TransactionCode string    `json:"transaction_code"`
	OrderID         string    `json:"order_id,omitempty"`
	ChargeID        string    `json:"charge_id,omitempty"`
	GiftID          string    `json:"gift_id"`
	Amount          int64     `json:"amount"`
	BuyerName       string    `json:"buyer_name"`
	BuyerEmail      string    `json:"buyer_email,omitempty"`
	PaymentMethod   string    `json:"payment_method,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		TransactionCode: t.TransactionCode,
		OrderID:         t.OrderID,
		ChargeID:        t.ChargeID,
		GiftID:          t.GiftID,
		Amount:          t.Amount,
		BuyerName:       t.BuyerName,
		BuyerEmail:      t.BuyerEmail,
		PaymentMethod:   t.PaymentMethod,
		Status:          string(t.Status),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func FromTransactions(txs []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, FromTransaction(t))
	}
	return out
}

type CheckoutResponse struct {
	CheckoutURL     string              `json:"checkout_url"`
	TransactionCode string              `json:"transaction_code"`
	Transaction     TransactionResponse `json:"transaction"`
}

func FromCheckout(out usecase.CheckoutOutput) CheckoutResponse {
	return CheckoutResponse{
		CheckoutURL:     out.CheckoutURL,
		TransactionCode: out.TransactionCode,
		Transaction:     FromTransaction(out.Transaction),
	}
}

type RefundResponse struct {
	Transaction    TransactionResponse `json:"transaction"`
	RefundedAmount int64               `json:"refunded_amount"`
	ChargeID       string              `json:"charge_id"`
}

func FromRefund(out usecase.RefundOutput) RefundResponse {
	return RefundResponse{
		Transaction:    FromTransaction(out.Transaction),
		RefundedAmount: out.RefundedAmount,
		ChargeID:       out.ChargeID,
	}
}

// SweepResponse is the bulk outcome shape shared by the pending-transaction
// sweep and the stale-reservation cleanup.
type SweepResponse struct {
	Checked int                 `json:"checked"`
	Items   []usecase.SweepItem `json:"items"`
}

func FromSweep(items []usecase.SweepItem) SweepResponse {
	return SweepResponse{Checked: len(items), Items: items}
}
