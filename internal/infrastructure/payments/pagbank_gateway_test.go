package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lista_presentes/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

func testGateway(serverURL string) *PagBankGateway {
	client := resty.New().
		SetBaseURL(serverURL).
		SetAuthToken("test-token").
		SetHeader("Content-Type", "application/json").
		SetTimeout(2 * time.Second)
	return &PagBankGateway{
		client:  client,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "pagbank-test"}),
	}
}

func TestNewPagBankGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		if _, err := NewPagBankGateway("  "); !errors.Is(err, ErrMissingPagBankToken) {
			t.Fatalf("expected ErrMissingPagBankToken, got %v", err)
		}
	})

	t.Run("with token", func(t *testing.T) {
		g, err := NewPagBankGateway("tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g == nil {
			t.Fatal("expected a gateway")
		}
	})
}

func TestPagBankGateway_CreateCheckout(t *testing.T) {
	t.Run("extracts the PAY link", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/checkouts" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			var body createCheckoutBody
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("unreadable request body: %v", err)
			}
			if body.ReferenceID != "gift-1" {
				t.Errorf("expected reference_id gift-1, got %q", body.ReferenceID)
			}
			if len(body.Items) != 1 || body.Items[0].UnitAmount != 19999 {
				t.Errorf("unexpected items %+v", body.Items)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"CHEC_1","links":[{"rel":"SELF","href":"https://x/self"},{"rel":"PAY","href":"https://x/pay"}]}`))
		}))
		defer srv.Close()

		g := testGateway(srv.URL)
		out, err := g.CreateCheckout(context.Background(), "gift-1", "Jogo de Panelas",
			19999, interfaces.CheckoutBuyer{Name: "Maria", Email: "maria@example.com", TaxID: "12345678909"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CheckoutID != "CHEC_1" || out.CheckoutURL != "https://x/pay" {
			t.Fatalf("unexpected result %+v", out)
		}
	})

	t.Run("reads a nested checkout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"checkouts":[{"id":"CHEC_2","links":[{"rel":"PAY","href":"https://x/pay2"}]}]}`))
		}))
		defer srv.Close()

		out, err := testGateway(srv.URL).CreateCheckout(context.Background(), "gift-2", "Aspirador",
			30000, interfaces.CheckoutBuyer{Name: "Maria"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CheckoutID != "CHEC_2" || out.CheckoutURL != "https://x/pay2" {
			t.Fatalf("unexpected result %+v", out)
		}
	})

	t.Run("allowlist restriction", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error_messages":[{"code":"allowlist_access_required"}]}`))
		}))
		defer srv.Close()

		_, err := testGateway(srv.URL).CreateCheckout(context.Background(), "gift-1", "Panela",
			1000, interfaces.CheckoutBuyer{Name: "Maria"})
		if !errors.Is(err, interfaces.ErrAllowlistRequired) {
			t.Fatalf("expected ErrAllowlistRequired, got %v", err)
		}
	})

	t.Run("rejection carries status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"error_messages":[{"description":"invalid tax_id"}]}`))
		}))
		defer srv.Close()

		_, err := testGateway(srv.URL).CreateCheckout(context.Background(), "gift-1", "Panela",
			1000, interfaces.CheckoutBuyer{Name: "Maria"})
		var rejection *interfaces.RejectionError
		if !errors.As(err, &rejection) {
			t.Fatalf("expected RejectionError, got %v", err)
		}
		if rejection.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("expected status 422, got %d", rejection.StatusCode)
		}
		if !errors.Is(err, interfaces.ErrGatewayRejected) {
			t.Fatal("rejection should unwrap to ErrGatewayRejected")
		}
	})

	t.Run("missing pay link is a rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"CHEC_3","links":[{"rel":"SELF","href":"https://x/self"}]}`))
		}))
		defer srv.Close()

		_, err := testGateway(srv.URL).CreateCheckout(context.Background(), "gift-1", "Panela",
			1000, interfaces.CheckoutBuyer{Name: "Maria"})
		var rejection *interfaces.RejectionError
		if !errors.As(err, &rejection) {
			t.Fatalf("expected RejectionError, got %v", err)
		}
	})

	t.Run("unreachable gateway", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := testGateway(srv.URL).CreateCheckout(context.Background(), "gift-1", "Panela",
			1000, interfaces.CheckoutBuyer{Name: "Maria"})
		if !errors.Is(err, interfaces.ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})
}

func TestPagBankGateway_FetchCheckout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/checkouts/CHEC_1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"id":"CHEC_1","status":"PAID","reference_id":"gift-1","orders":[{"id":"ORDE_1"},{"id":"ORDE_2"}]}`))
	}))
	defer srv.Close()

	out, err := testGateway(srv.URL).FetchCheckout(context.Background(), "CHEC_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != "PAID" || out.ReferenceID != "gift-1" {
		t.Fatalf("unexpected checkout %+v", out)
	}
	if len(out.OrderIDs) != 2 || out.OrderIDs[0] != "ORDE_1" {
		t.Fatalf("unexpected orders %v", out.OrderIDs)
	}
}

func TestPagBankGateway_FetchOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"ORDE_1","reference_id":"gift-1","charges":[
			{"id":"CHAR_1","status":"PAID","paid_at":"2026-08-30T12:00:00Z",
			 "amount":{"value":19999,"summary":{"total":19999,"paid":19999,"refunded":0}},
			 "payment_method":{"type":"PIX"}}]}`))
	}))
	defer srv.Close()

	out, err := testGateway(srv.URL).FetchOrder(context.Background(), "ORDE_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Charges) != 1 {
		t.Fatalf("expected one charge, got %d", len(out.Charges))
	}
	charge := out.Charges[0]
	if charge.ID != "CHAR_1" || charge.Status != "PAID" || charge.PaymentMethod != "PIX" {
		t.Fatalf("unexpected charge %+v", charge)
	}
	if charge.TotalAmount != 19999 || charge.Refunded != 0 {
		t.Fatalf("unexpected amounts %+v", charge)
	}
}

func TestPagBankGateway_FetchCharge_TotalFallsBackToValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"CHAR_1","status":"PAID","amount":{"value":5000}}`))
	}))
	defer srv.Close()

	out, err := testGateway(srv.URL).FetchCharge(context.Background(), "CHAR_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TotalAmount != 5000 {
		t.Fatalf("expected total 5000, got %d", out.TotalAmount)
	}
}

func TestPagBankGateway_CancelCharge(t *testing.T) {
	t.Run("refuses a fully refunded charge", func(t *testing.T) {
		var cancelCalled bool
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				cancelCalled = true
			}
			w.Write([]byte(`{"id":"CHAR_1","status":"CANCELED","amount":{"value":5000,"summary":{"total":5000,"refunded":5000}}}`))
		}))
		defer srv.Close()

		_, err := testGateway(srv.URL).CancelCharge(context.Background(), "CHAR_1", 5000)
		if !errors.Is(err, interfaces.ErrAlreadyRefunded) {
			t.Fatalf("expected ErrAlreadyRefunded, got %v", err)
		}
		if cancelCalled {
			t.Fatal("cancel endpoint should not be hit for a refunded charge")
		}
	})

	t.Run("cancels and re-fetches", func(t *testing.T) {
		var fetches int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodPost && r.URL.Path == "/charges/CHAR_1/cancel":
				var body map[string]any
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Errorf("unreadable cancel body: %v", err)
				}
				w.Write([]byte(`{}`))
			case r.Method == http.MethodGet && r.URL.Path == "/charges/CHAR_1":
				fetches++
				refunded := int64(0)
				if fetches > 1 {
					refunded = 5000
				}
				payload := map[string]any{
					"id": "CHAR_1", "status": "PAID",
					"amount": map[string]any{"value": 5000, "summary": map[string]any{"total": 5000, "refunded": refunded}},
				}
				json.NewEncoder(w).Encode(payload)
			default:
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
		}))
		defer srv.Close()

		out, err := testGateway(srv.URL).CancelCharge(context.Background(), "CHAR_1", 5000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Refunded != 5000 {
			t.Fatalf("expected authoritative refunded 5000, got %d", out.Refunded)
		}
		if fetches != 2 {
			t.Fatalf("expected a re-fetch after cancel, got %d fetches", fetches)
		}
	})
}
