package entities

import "time"

// TransactionStatus tracks one payment attempt independently of the gift.
//
// "PAID" mirrors the gateway's charge status verbatim so admin listings and
// gateway responses read the same.

type TransactionStatus string

const (
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusPaid       TransactionStatus = "PAID"
	TransactionStatusRefunded   TransactionStatus = "refunded"
	TransactionStatusFailed     TransactionStatus = "failed"
)

// Transaction is the ledger row for one checkout attempt.
//
// Storage model (DynamoDB):
//   - PK: transaction_code (the gateway checkout id)
//   - GSI1 (gift_id-index): gift_id
//
// A gift can accumulate abandoned rows over time; the janitor deletes rows
// stuck in processing past the staleness threshold.
type Transaction struct {
	ID              string            `json:"id"`
	TransactionCode string            `json:"transaction_code"`
	OrderID         string            `json:"order_id,omitempty"`
	ChargeID        string            `json:"charge_id,omitempty"`
	GiftID          string            `json:"gift_id"`
	Amount          int64             `json:"amount"`
	BuyerName       string            `json:"buyer_name"`
	BuyerEmail      string            `json:"buyer_email,omitempty"`
	PaymentMethod   string            `json:"payment_method,omitempty"`
	Status          TransactionStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// StaleAfter reports whether the row has sat in processing longer than the
// given threshold.
func (t Transaction) StaleAfter(threshold time.Duration, now time.Time) bool {
	return t.Status == TransactionStatusProcessing && now.Sub(t.CreatedAt) > threshold
}
