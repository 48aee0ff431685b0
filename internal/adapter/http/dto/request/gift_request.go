package request

import (
	"strings"

	"lista_presentes/internal/domain/entities"
)

// GiftRequest is the admin catalog payload for create/update and bulk seed.
type GiftRequest struct {
	ID            string `json:"id"`
	Nome          string `json:"nome" binding:"required"`
	Categoria     string `json:"categoria"`
	PrecoEstimado string `json:"preco_estimado"`
	FaixaPreco    string `json:"faixa_preco"`
	ImageURL      string `json:"image_url"`
	Ativo         *bool  `json:"ativo"`
}

func (r GiftRequest) ToEntity() entities.Gift {
	ativo := true
	if r.Ativo != nil {
		ativo = *r.Ativo
	}
	return entities.Gift{
		ID:            strings.TrimSpace(r.ID),
		Nome:          strings.TrimSpace(r.Nome),
		Categoria:     strings.TrimSpace(r.Categoria),
		PrecoEstimado: strings.TrimSpace(r.PrecoEstimado),
		FaixaPreco:    entities.PriceTier(strings.TrimSpace(r.FaixaPreco)),
		ImageURL:      strings.TrimSpace(r.ImageURL),
		Ativo:         ativo,
	}
}

// ReserveGiftRequest is the guest payload for pledging a physical gift.
type ReserveGiftRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Familia  string `json:"familia"`
	Telefone string `json:"telefone"`
	Mensagem string `json:"mensagem"`
}

func (r ReserveGiftRequest) ToBuyer() entities.PurchaseInfo {
	return entities.PurchaseInfo{
		Nome:     strings.TrimSpace(r.Nome),
		Familia:  strings.TrimSpace(r.Familia),
		Telefone: strings.TrimSpace(r.Telefone),
		Mensagem: strings.TrimSpace(r.Mensagem),
	}
}

// ObtainedRequest toggles the admin-only obtido state.
type ObtainedRequest struct {
	Obtido *bool `json:"obtido" binding:"required"`
}

// VisibilityRequest toggles whether the gift shows on the public list.
type VisibilityRequest struct {
	Ativo *bool `json:"ativo" binding:"required"`
}

// ReceivedRequest confirms the couple physically received a purchased gift.
type ReceivedRequest struct {
	Recebido *bool `json:"recebido" binding:"required"`
}
