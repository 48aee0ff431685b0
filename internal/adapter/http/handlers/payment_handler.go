package handlers

import (
	"errors"
	request "lista_presentes/internal/adapter/http/dto/request"
	response "lista_presentes/internal/adapter/http/dto/response"
	"lista_presentes/internal/usecase"
	"lista_presentes/internal/usecase/interfaces"
	"lista_presentes/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler handles checkout creation, refunds and the gateway
// webhook.

type PaymentHandler struct {
	payments  usecase.IPaymentUseCase
	reconcile usecase.IReconcileUseCase
}

func NewPaymentHandler(payments usecase.IPaymentUseCase, reconcile usecase.IReconcileUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments, reconcile: reconcile}
}

// CreateCheckout starts an online payment: locks the gift and answers with
// the gateway URL the guest finishes the payment in.
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	out, err := h.payments.BeginCheckout(c.Request.Context(), usecase.CheckoutInput{
		GiftID:        payload.GiftID,
		BuyerName:     payload.Nome,
		BuyerEmail:    payload.Email,
		BuyerTaxID:    payload.CPF,
		PaymentMethod: payload.MetodoPagamento,
	})
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCheckout(out))
}

// Refund cancels the paid charge behind a ledger row. The gift itself is
// not released here; that is a separate admin action.
func (h *PaymentHandler) Refund(c *gin.Context) {
	var payload request.RefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	out, err := h.payments.Refund(c.Request.Context(), payload.TransactionCode, payload.Amount)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRefund(out))
}

// Webhook receives gateway notifications. The payload is only a hint: the
// charge state is always re-read from the gateway before anything is
// written, so a forged notification cannot mark a gift as paid. Always
// answers 200 so the gateway does not retry forever.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var payload request.WebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] webhook with unreadable body err=%v", err)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	checkoutID := payload.ResolveCheckoutID()
	if checkoutID == "" {
		log.Printf("[payment][handler] webhook without checkout id reference_id=%s", payload.ReferenceID)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	res, err := h.reconcile.CheckTransaction(c.Request.Context(), checkoutID)
	if err != nil {
		log.Printf("[payment][handler] webhook reconcile failed code=%s err=%v", checkoutID, err)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true, "paid": res.Paid})
}

// CheckAllPending sweeps every processing ledger row against the gateway.
func (h *PaymentHandler) CheckAllPending(c *gin.Context) {
	items, err := h.reconcile.CheckAllPending(c.Request.Context())
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSweep(items))
}

func mapPaymentError(err error) *pkg.AppError {
	var rejection *interfaces.RejectionError

	switch {
	case errors.Is(err, usecase.ErrInvalidCheckout):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGiftNotFound):
		return pkg.NewDomainErrorSimple("GIFT_NOT_FOUND", "Gift not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGiftNotAvailable):
		return pkg.NewDomainErrorSimple("GIFT_NOT_AVAILABLE", "Gift is not available", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotPaid):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_PAID", "Transaction is not paid", http.StatusConflict)
	case errors.Is(err, interfaces.ErrAlreadyRefunded):
		return pkg.NewDomainErrorSimple("ALREADY_REFUNDED", "Charge already fully refunded", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrAllowlistRequired):
		return pkg.NewDomainErrorSimple("ALLOWLIST_REQUIRED", "Gateway account not approved for production", http.StatusForbidden).
			WithDetail(interfaces.AllowlistHelpURL)
	case errors.As(err, &rejection):
		status := rejection.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		return pkg.NewDomainErrorSimple("GATEWAY_REJECTED", "Payment gateway rejected the request", status).
			WithDetail(rejection.Body)
	case errors.Is(err, interfaces.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
