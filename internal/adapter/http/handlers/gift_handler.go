package handlers

import (
	"errors"
	request "lista_presentes/internal/adapter/http/dto/request"
	response "lista_presentes/internal/adapter/http/dto/response"
	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/usecase"
	"lista_presentes/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidGiftPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid gift payload", http.StatusBadRequest)
)

// GiftHandler handles HTTP requests for the gift catalog and the gift
// state machine.

type GiftHandler struct {
	usecase usecase.IGiftUseCase
}

func NewGiftHandler(uc usecase.IGiftUseCase) *GiftHandler {
	return &GiftHandler{usecase: uc}
}

// ListGifts returns the public catalog. Admins pass include_inactive=true
// to also see hidden entries.
func (h *GiftHandler) ListGifts(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	gifts, err := h.usecase.List(c.Request.Context(), includeInactive)
	if err != nil {
		appErr := mapGiftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGifts(gifts))
}

func (h *GiftHandler) GetGift(c *gin.Context) {
	gift, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapGiftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGift(gift))
}

// UpsertGift creates or updates one catalog entry.
func (h *GiftHandler) UpsertGift(c *gin.Context) {
	var payload request.GiftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGiftPayload.HTTPStatus, errInvalidGiftPayload.ToHTTPError())
		return
	}

	gift, err := h.usecase.Upsert(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapGiftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromGift(gift))
}

// ReplaceCatalog seeds the whole catalog in one shot, replacing whatever
// is stored.
func (h *GiftHandler) ReplaceCatalog(c *gin.Context) {
	var payload []request.GiftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGiftPayload.HTTPStatus, errInvalidGiftPayload.ToHTTPError())
		return
	}

	gifts := make([]entities.Gift, 0, len(payload))
	for _, p := range payload {
		gifts = append(gifts, p.ToEntity())
	}

	saved, err := h.usecase.ReplaceAll(c.Request.Context(), gifts)
	if err != nil {
		appErr := mapGiftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGifts(saved))
}

// ReserveGift records a physical pledge: disponivel -> comprado with the
// guest as buyer. A lost race answers 409.
func (h *GiftHandler) ReserveGift(c *gin.Context) {
	var payload request.ReserveGiftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGiftPayload.HTTPStatus, errInvalidGiftPayload.ToHTTPError())
		return
	}

	gift, err := h.usecase.ReservePhysical(c.Request.Context(), c.Param("id"), payload.ToBuyer())
	if err != nil {
		appErr := mapGiftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGift(gift))
}

// RemoveReservation is the admin undo: comprado -> disponivel.
func (h *GiftHandler) RemoveReservation(c *gin.Context) {
	gift, err := h.usecase.RemoveReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapGiftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGift(gift))
}

func (h *GiftHandler) SetObtained(c *gin.Context) {
	var payload request.ObtainedRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Obtido == nil {
		c.JSON(errInvalidGiftPayload.HTTPStatus, errInvalidGiftPayload.ToHTTPError())
		return
	}

	gift, err := h.usecase.SetObtained(c.Request.Context(), c.Param("id"), *payload.Obtido)
	if err != nil {
		appErr := mapGiftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGift(gift))
}

func (h *GiftHandler) SetVisibility(c *gin.Context) {
	var payload request.VisibilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Ativo == nil {
		c.JSON(errInvalidGiftPayload.HTTPStatus, errInvalidGiftPayload.ToHTTPError())
		return
	}

	gift, err := h.usecase.SetVisibility(c.Request.Context(), c.Param("id"), *payload.Ativo)
	if err != nil {
		appErr := mapGiftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGift(gift))
}

// ConfirmReceived marks a purchased gift as physically delivered to the
// couple.
func (h *GiftHandler) ConfirmReceived(c *gin.Context) {
	var payload request.ReceivedRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Recebido == nil {
		c.JSON(errInvalidGiftPayload.HTTPStatus, errInvalidGiftPayload.ToHTTPError())
		return
	}

	gift, err := h.usecase.ConfirmReceived(c.Request.Context(), c.Param("id"), *payload.Recebido)
	if err != nil {
		appErr := mapGiftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGift(gift))
}

func (h *GiftHandler) DeleteGift(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapGiftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapGiftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGiftID), errors.Is(err, usecase.ErrInvalidGiftPayload), errors.Is(err, usecase.ErrInvalidBuyer):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGiftNotFound):
		return pkg.NewDomainErrorSimple("GIFT_NOT_FOUND", "Gift not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGiftNotAvailable):
		return pkg.NewDomainErrorSimple("GIFT_NOT_AVAILABLE", "Gift is not available", http.StatusConflict)
	case errors.Is(err, usecase.ErrGiftNotPurchased):
		return pkg.NewDomainErrorSimple("GIFT_NOT_PURCHASED", "Gift is not purchased", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
