package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"lista_presentes/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

var ErrMissingPagBankToken = errors.New("missing PAGSEGURO_TOKEN")

const (
	sandboxBaseURL    = "https://sandbox.api.pagseguro.com"
	productionBaseURL = "https://api.pagseguro.com"

	allowlistMarker = "allowlist_access_required"

	defaultTimeoutSeconds = 8
)

// PagBankGateway talks to the PagBank Checkouts API (v3): a checkout spawns
// orders, an order holds charges, a charge has the terminal PAID status.
type PagBankGateway struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
}

var _ interfaces.IPaymentGateway = (*PagBankGateway)(nil)

// NewPagBankGateway builds the adapter from the environment. PAGSEGURO_ENV
// selects sandbox (default) or production; every call carries a bounded
// timeout and the breaker fails fast when the gateway is down so polling
// storms don't pile up blocked requests.
func NewPagBankGateway(token string) (*PagBankGateway, error) {
	if strings.TrimSpace(token) == "" {
		log.Printf("[payment][gateway] missing PAGSEGURO_TOKEN")
		return nil, ErrMissingPagBankToken
	}

	baseURL := sandboxBaseURL
	if strings.EqualFold(strings.TrimSpace(os.Getenv("PAGSEGURO_ENV")), "production") {
		baseURL = productionBaseURL
	}

	timeout := defaultTimeoutSeconds
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv("PAGBANK_TIMEOUT_SECONDS"))); err == nil && v > 0 {
		timeout = v
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetTimeout(time.Duration(timeout) * time.Second)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "pagbank",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[payment][gateway] breaker %s: %s -> %s", name, from, to)
		},
	})

	log.Printf("[payment][gateway] PagBank client initialized base_url=%s timeout=%ds", baseURL, timeout)
	return &PagBankGateway{client: client, breaker: breaker}, nil
}

type checkoutItem struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
}

type checkoutCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	TaxID string `json:"tax_id"`
}

type createCheckoutBody struct {
	ReferenceID string           `json:"reference_id"`
	Items       []checkoutItem   `json:"items"`
	Customer    checkoutCustomer `json:"customer"`
}

type link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type checkoutPayload struct {
	ID          string            `json:"id"`
	Status      string            `json:"status"`
	ReferenceID string            `json:"reference_id"`
	Links       []link            `json:"links"`
	Orders      []idRef           `json:"orders"`
	Checkouts   []checkoutPayload `json:"checkouts"`
}

type idRef struct {
	ID string `json:"id"`
}

type amountSummary struct {
	Total    int64 `json:"total"`
	Paid     int64 `json:"paid"`
	Refunded int64 `json:"refunded"`
}

type chargeAmount struct {
	Value   int64         `json:"value"`
	Summary amountSummary `json:"summary"`
}

type chargePayload struct {
	ID            string        `json:"id"`
	Status        string        `json:"status"`
	PaidAt        string        `json:"paid_at"`
	Amount        chargeAmount  `json:"amount"`
	PaymentMethod paymentMethod `json:"payment_method"`
}

type paymentMethod struct {
	Type string `json:"type"`
}

type orderPayload struct {
	ID          string          `json:"id"`
	ReferenceID string          `json:"reference_id"`
	Charges     []chargePayload `json:"charges"`
}

func (g *PagBankGateway) CreateCheckout(ctx context.Context, giftID, giftName string, amountCents int64, buyer interfaces.CheckoutBuyer) (interfaces.CheckoutCreated, error) {
	body := createCheckoutBody{
		ReferenceID: giftID,
		Items: []checkoutItem{{
			Name:       "Presente de Casamento - " + giftName,
			Quantity:   1,
			UnitAmount: amountCents,
		}},
		Customer: checkoutCustomer{Name: buyer.Name, Email: buyer.Email, TaxID: buyer.TaxID},
	}

	log.Printf("[payment][gateway] create checkout gift_id=%s amount=%d", giftID, amountCents)
	raw, err := g.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(body).Post("/checkouts")
	})
	if err != nil {
		return interfaces.CheckoutCreated{}, err
	}

	var payload checkoutPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return interfaces.CheckoutCreated{}, fmt.Errorf("invalid gateway response: %w", err)
	}

	// The checkout may come top-level or nested under checkouts[0].
	checkout := payload
	if checkout.ID == "" && len(payload.Checkouts) > 0 {
		checkout = payload.Checkouts[0]
	}

	var payURL string
	for _, l := range checkout.Links {
		if l.Rel == "PAY" {
			payURL = l.Href
			break
		}
	}
	if payURL == "" {
		for _, l := range payload.Links {
			if l.Rel == "PAY" {
				payURL = l.Href
				break
			}
		}
	}

	checkoutID := checkout.ID
	if checkoutID == "" {
		checkoutID = payload.ID
	}
	if checkoutID == "" || payURL == "" {
		return interfaces.CheckoutCreated{}, &interfaces.RejectionError{StatusCode: 200, Body: "checkout link missing in gateway response"}
	}

	log.Printf("[payment][gateway] checkout created id=%s", checkoutID)
	return interfaces.CheckoutCreated{CheckoutID: checkoutID, CheckoutURL: payURL}, nil
}

func (g *PagBankGateway) FetchCheckout(ctx context.Context, checkoutID string) (interfaces.GatewayCheckout, error) {
	raw, err := g.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/checkouts/" + checkoutID)
	})
	if err != nil {
		return interfaces.GatewayCheckout{}, err
	}

	var payload checkoutPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return interfaces.GatewayCheckout{}, fmt.Errorf("invalid gateway response: %w", err)
	}

	out := interfaces.GatewayCheckout{ID: payload.ID, Status: payload.Status, ReferenceID: payload.ReferenceID}
	for _, o := range payload.Orders {
		out.OrderIDs = append(out.OrderIDs, o.ID)
	}
	return out, nil
}

func (g *PagBankGateway) FetchOrder(ctx context.Context, orderID string) (interfaces.GatewayOrder, error) {
	raw, err := g.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/orders/" + orderID)
	})
	if err != nil {
		return interfaces.GatewayOrder{}, err
	}

	var payload orderPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return interfaces.GatewayOrder{}, fmt.Errorf("invalid gateway response: %w", err)
	}

	out := interfaces.GatewayOrder{ID: payload.ID, ReferenceID: payload.ReferenceID}
	for _, c := range payload.Charges {
		out.Charges = append(out.Charges, toGatewayCharge(c))
	}
	return out, nil
}

func (g *PagBankGateway) FetchCharge(ctx context.Context, chargeID string) (interfaces.GatewayCharge, error) {
	raw, err := g.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/charges/" + chargeID)
	})
	if err != nil {
		return interfaces.GatewayCharge{}, err
	}

	var payload chargePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return interfaces.GatewayCharge{}, fmt.Errorf("invalid gateway response: %w", err)
	}
	return toGatewayCharge(payload), nil
}

// CancelCharge guards against double refunds before touching the cancel
// endpoint: the gateway's error for that case is opaque, ours is not.
func (g *PagBankGateway) CancelCharge(ctx context.Context, chargeID string, amountCents int64) (interfaces.GatewayCharge, error) {
	charge, err := g.FetchCharge(ctx, chargeID)
	if err != nil {
		return interfaces.GatewayCharge{}, err
	}

	available := charge.TotalAmount - charge.Refunded
	if available <= 0 {
		log.Printf("[payment][gateway] cancel refused charge_id=%s total=%d refunded=%d", chargeID, charge.TotalAmount, charge.Refunded)
		return interfaces.GatewayCharge{}, interfaces.ErrAlreadyRefunded
	}
	if amountCents > available {
		log.Printf("[payment][gateway] requested refund %d exceeds available %d charge_id=%s; gateway caps it", amountCents, available, chargeID)
	}

	body := map[string]any{"amount": map[string]any{"value": amountCents}}
	if _, err := g.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(body).Post("/charges/" + chargeID + "/cancel")
	}); err != nil {
		return interfaces.GatewayCharge{}, err
	}

	// Re-fetch for the authoritative refunded figure.
	after, err := g.FetchCharge(ctx, chargeID)
	if err != nil {
		log.Printf("[payment][gateway] charge re-fetch after cancel failed charge_id=%s err=%v", chargeID, err)
		charge.Refunded = charge.Refunded + min64(amountCents, available)
		return charge, nil
	}
	log.Printf("[payment][gateway] cancel done charge_id=%s refunded=%d", chargeID, after.Refunded)
	return after, nil
}

// do runs one gateway call through the breaker and normalizes transport and
// HTTP failures into the shared error taxonomy.
func (g *PagBankGateway) do(ctx context.Context, call func(r *resty.Request) (*resty.Response, error)) ([]byte, error) {
	out, err := g.breaker.Execute(func() (any, error) {
		resp, err := call(g.client.R().SetContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
		}
		if resp.IsError() {
			body := string(resp.Body())
			if strings.Contains(body, allowlistMarker) {
				log.Printf("[payment][gateway] allowlist restriction status=%d help=%s", resp.StatusCode(), interfaces.AllowlistHelpURL)
				return nil, fmt.Errorf("%w (see %s)", interfaces.ErrAllowlistRequired, interfaces.AllowlistHelpURL)
			}
			return nil, &interfaces.RejectionError{StatusCode: resp.StatusCode(), Body: body}
		}
		return resp.Body(), nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
		}
		return nil, err
	}
	return out.([]byte), nil
}

func toGatewayCharge(c chargePayload) interfaces.GatewayCharge {
	total := c.Amount.Summary.Total
	if total == 0 {
		total = c.Amount.Value
	}
	return interfaces.GatewayCharge{
		ID:            c.ID,
		Status:        c.Status,
		PaymentMethod: c.PaymentMethod.Type,
		Amount:        c.Amount.Value,
		TotalAmount:   total,
		Refunded:      c.Amount.Summary.Refunded,
		PaidAt:        c.PaidAt,
	}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
