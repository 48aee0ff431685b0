package response

import (
	"time"

	"lista_presentes/internal/domain/entities"
)

type PurchaseInfoResponse struct {
	Nome               string    `json:"nome"`
	Familia            string    `json:"familia,omitempty"`
	Telefone           string    `json:"telefone,omitempty"`
	Mensagem           string    `json:"mensagem,omitempty"`
	TipoPagamento      string    `json:"tipo_pagamento"`
	DataConfirmacao    time.Time `json:"data_confirmacao"`
	RecebidoConfirmado bool      `json:"recebido_confirmado"`
}

type GiftResponse struct {
	ID            string                `json:"id"`
	Nome          string                `json:"nome"`
	Categoria     string                `json:"categoria"`
	PrecoEstimado string                `json:"preco_estimado"`
	FaixaPreco    string                `json:"faixa_preco"`
	ImageURL      string                `json:"image_url,omitempty"`
	Ativo         bool                  `json:"ativo"`
	Status        string                `json:"status"`
	CompradoPor   *PurchaseInfoResponse `json:"comprado_por,omitempty"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func FromGift(g entities.Gift) GiftResponse {
	resp := GiftResponse{
		ID:            g.ID,
		Nome:          g.Nome,
		Categoria:     g.Categoria,
		PrecoEstimado: g.PrecoEstimado,
		FaixaPreco:    string(g.FaixaPreco),
		ImageURL:      g.ImageURL,
		Ativo:         g.Ativo,
		Status:        string(g.Status),
		UpdatedAt:     g.UpdatedAt,
	}
	if g.CompradoPor != nil {
		resp.CompradoPor = &PurchaseInfoResponse{
			Nome:               g.CompradoPor.Nome,
			Familia:            g.CompradoPor.Familia,
			Telefone:           g.CompradoPor.Telefone,
			Mensagem:           g.CompradoPor.Mensagem,
			TipoPagamento:      g.CompradoPor.TipoPagamento,
			DataConfirmacao:    g.CompradoPor.DataConfirmacao,
			RecebidoConfirmado: g.CompradoPor.RecebidoConfirmado,
		}
	}
	return resp
}

func FromGifts(gifts []entities.Gift) []GiftResponse {
	out := make([]GiftResponse, 0, len(gifts))
	for _, g := range gifts {
		out = append(out, FromGift(g))
	}
	return out
}
