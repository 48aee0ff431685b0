package handlers

import (
	"errors"
	request "lista_presentes/internal/adapter/http/dto/request"
	response "lista_presentes/internal/adapter/http/dto/response"
	"lista_presentes/internal/usecase"
	"lista_presentes/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TransactionHandler exposes the admin ledger: listings, lookups and the
// reconciliation/cleanup operations.

type TransactionHandler struct {
	transactions usecase.ITransactionUseCase
	reconcile    usecase.IReconcileUseCase
}

func NewTransactionHandler(transactions usecase.ITransactionUseCase, reconcile usecase.IReconcileUseCase) *TransactionHandler {
	return &TransactionHandler{transactions: transactions, reconcile: reconcile}
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	txs, err := h.transactions.List(c.Request.Context())
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

// LatestByGift answers the newest ledger row for a gift, paid or not.
func (h *TransactionHandler) LatestByGift(c *gin.Context) {
	tx, err := h.transactions.LatestByGiftID(c.Request.Context(), c.Query("gift_id"))
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

func (h *TransactionHandler) GetByCode(c *gin.Context) {
	tx, err := h.transactions.GetByCode(c.Request.Context(), c.Query("code"))
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// CheckStatus reconciles one transaction against the gateway on demand.
func (h *TransactionHandler) CheckStatus(c *gin.Context) {
	var payload request.CheckStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.reconcile.CheckTransaction(c.Request.Context(), payload.TransactionCode)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}

// Cleanup releases gifts stuck in processando_pagamento past the staleness
// threshold and deletes their abandoned ledger rows.
func (h *TransactionHandler) Cleanup(c *gin.Context) {
	items, err := h.reconcile.CleanupStale(c.Request.Context())
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSweep(items))
}

func mapTransactionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGiftID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
