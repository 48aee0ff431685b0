package interfaces

import (
	"context"
	"errors"
	"fmt"
)

// AllowlistHelpURL points at the gateway's homologation guide; surfaced to
// admins when the production API rejects an unapproved account.
const AllowlistHelpURL = "https://dev.pagseguro.uol.com.br/docs/integracao-e-homologacao"

// Gateway error taxonomy. The adapter normalizes PagBank failures into
// these so usecases never string-match raw gateway bodies.
var (
	// ErrGatewayUnavailable: network error or timeout; safe to retry.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	// ErrGatewayRejected: non-2xx from the gateway; the raw body travels
	// wrapped alongside for admin diagnosis. Not retried automatically.
	ErrGatewayRejected = errors.New("payment gateway rejected request")
	// ErrAllowlistRequired: the account is not approved for the production
	// API yet. Never retried.
	ErrAllowlistRequired = errors.New("gateway account not allowlisted for production")
	// ErrAlreadyRefunded: the charge has no refundable amount left.
	ErrAlreadyRefunded = errors.New("charge already fully refunded")
)

// RejectionError carries the gateway's raw error body so admins can see the
// exact rejection while guests only get a generic message.
type RejectionError struct {
	StatusCode int
	Body       string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("gateway rejected request status=%d body=%s", e.StatusCode, e.Body)
}

func (e *RejectionError) Unwrap() error { return ErrGatewayRejected }

// CheckoutBuyer identifies the guest for the gateway.
type CheckoutBuyer struct {
	Name  string
	Email string
	TaxID string
}

// CheckoutCreated is the adapter's normalized create-checkout response.
type CheckoutCreated struct {
	CheckoutID  string
	CheckoutURL string
}

// GatewayCheckout is a fetched checkout: its status plus the order ids it
// has spawned, in gateway response order.
type GatewayCheckout struct {
	ID          string
	Status      string
	ReferenceID string
	OrderIDs    []string
}

// GatewayCharge is one money-movement attempt under an order.
type GatewayCharge struct {
	ID            string
	Status        string
	PaymentMethod string
	Amount        int64
	TotalAmount   int64
	Refunded      int64
	PaidAt        string
}

// GatewayOrder holds the charges for one order, in gateway response order.
type GatewayOrder struct {
	ID          string
	ReferenceID string
	Charges     []GatewayCharge
}

// IPaymentGateway wraps the external checkout/order/charge HTTP API.
//
// All calls apply a bounded timeout; the environment selects sandbox vs
// production base URLs. This system never owns the gateway resources, it
// only reads them and occasionally cancels a charge.
type IPaymentGateway interface {
	CreateCheckout(ctx context.Context, giftID, giftName string, amountCents int64, buyer CheckoutBuyer) (CheckoutCreated, error)
	FetchCheckout(ctx context.Context, checkoutID string) (GatewayCheckout, error)
	FetchOrder(ctx context.Context, orderID string) (GatewayOrder, error)
	FetchCharge(ctx context.Context, chargeID string) (GatewayCharge, error)

	// CancelCharge first fetches the charge and fails with
	// ErrAlreadyRefunded when total - refunded <= 0, then requests the
	// cancel and returns the re-fetched charge with the authoritative
	// refunded figure.
	CancelCharge(ctx context.Context, chargeID string, amountCents int64) (GatewayCharge, error)
}
