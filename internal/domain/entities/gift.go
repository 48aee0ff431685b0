package entities

import (
	"errors"
	"time"

	"lista_presentes/pkg"
)

// GiftStatus represents the lifecycle of a catalog gift.
//
// Transitions:
//   - disponivel -> processando_pagamento (online checkout started)
//   - processando_pagamento -> comprado   (payment confirmed)
//   - processando_pagamento -> disponivel (janitor timeout / admin cancel)
//   - disponivel -> comprado              (physical pledge, no gateway)
//   - comprado -> disponivel              (admin removes reservation)
//   - disponivel <-> obtido               (admin-only "already have it")

type GiftStatus string

const (
	GiftStatusDisponivel  GiftStatus = "disponivel"
	GiftStatusProcessando GiftStatus = "processando_pagamento"
	GiftStatusComprado    GiftStatus = "comprado"
	GiftStatusObtido      GiftStatus = "obtido"
)

type PriceTier string

const (
	PriceTierBaixo PriceTier = "baixo"
	PriceTierMedio PriceTier = "medio"
	PriceTierAlto  PriceTier = "alto"
)

// Contribution types recorded on a confirmed purchase. Online ones are
// derived from the gateway charge's payment_method, not the method the
// guest originally picked.
const (
	ContributionFisico = "fisico"
	ContributionPix    = "pix"
	ContributionCartao = "cartao"
	ContributionBoleto = "boleto"
)

var (
	ErrGiftNotAvailable  = errors.New("gift not available")
	ErrGiftNotProcessing = errors.New("gift not in payment processing")
	ErrGiftNotPurchased  = errors.New("gift not purchased")
	ErrMissingBuyer      = errors.New("missing buyer info")
)

// PurchaseInfo is the buyer sub-record. Present on a gift if and only if
// the gift status is comprado.
type PurchaseInfo struct {
	Nome               string    `json:"nome"`
	Familia            string    `json:"familia,omitempty"`
	Telefone           string    `json:"telefone,omitempty"`
	Mensagem           string    `json:"mensagem,omitempty"`
	TipoPagamento      string    `json:"tipo_pagamento"`
	DataConfirmacao    time.Time `json:"data_confirmacao"`
	RecebidoConfirmado bool      `json:"recebido_confirmado"`
}

// Gift is the catalog entry persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//
// The status field plus CompradoPor are only ever written together through
// the transition methods below, so CompradoPor != nil iff status == comprado
// holds everywhere the entity travels.
type Gift struct {
	ID            string        `json:"id"`
	Nome          string        `json:"nome"`
	Categoria     string        `json:"categoria"`
	PrecoEstimado string        `json:"preco_estimado"`
	FaixaPreco    PriceTier     `json:"faixa_preco"`
	ImageURL      string        `json:"image_url,omitempty"`
	Ativo         bool          `json:"ativo"`
	Status        GiftStatus    `json:"status"`
	CompradoPor   *PurchaseInfo `json:"comprado_por,omitempty"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PriceCents parses the display price into gateway minor units.
func (g Gift) PriceCents() (int64, error) {
	return pkg.ParseBRL(g.PrecoEstimado)
}

// TierForCents buckets a price into the catalog's filter tiers.
func TierForCents(cents int64) PriceTier {
	switch {
	case cents < 15000:
		return PriceTierBaixo
	case cents < 40000:
		return PriceTierMedio
	default:
		return PriceTierAlto
	}
}

// BeginPayment guards disponivel -> processando_pagamento. The buyer is not
// recorded yet; that only happens on confirmation.
func (g *Gift) BeginPayment(now time.Time) error {
	if g.Status != GiftStatusDisponivel {
		return ErrGiftNotAvailable
	}
	g.Status = GiftStatusProcessando
	g.CompradoPor = nil
	g.UpdatedAt = now
	return nil
}

// ConfirmPurchase lands the gift in comprado with the buyer sub-record.
// Confirming an already-comprado gift is a no-op so reconciliation stays
// idempotent.
func (g *Gift) ConfirmPurchase(info PurchaseInfo, now time.Time) error {
	if g.Status == GiftStatusComprado {
		return nil
	}
	if g.Status != GiftStatusProcessando && g.Status != GiftStatusDisponivel {
		return ErrGiftNotAvailable
	}
	if info.Nome == "" {
		return ErrMissingBuyer
	}
	if info.DataConfirmacao.IsZero() {
		info.DataConfirmacao = now
	}
	g.Status = GiftStatusComprado
	g.CompradoPor = &info
	g.UpdatedAt = now
	return nil
}

// Release reverts processando_pagamento back to disponivel (janitor or
// admin cancel), clearing any partially set buyer info.
func (g *Gift) Release(now time.Time) error {
	if g.Status != GiftStatusProcessando {
		return ErrGiftNotProcessing
	}
	g.Status = GiftStatusDisponivel
	g.CompradoPor = nil
	g.UpdatedAt = now
	return nil
}

// RemoveReservation is the admin undo for a comprado gift.
func (g *Gift) RemoveReservation(now time.Time) error {
	if g.Status != GiftStatusComprado {
		return ErrGiftNotPurchased
	}
	g.Status = GiftStatusDisponivel
	g.CompradoPor = nil
	g.UpdatedAt = now
	return nil
}

// SetObtained toggles the admin-only obtido state.
func (g *Gift) SetObtained(obtained bool, now time.Time) {
	if obtained {
		g.Status = GiftStatusObtido
	} else {
		g.Status = GiftStatusDisponivel
	}
	g.CompradoPor = nil
	g.UpdatedAt = now
}

// Validate checks the buyer/status invariant after unmarshalling from
// storage or request payloads.
func (g Gift) Validate() error {
	if g.Status == GiftStatusComprado && g.CompradoPor == nil {
		return ErrMissingBuyer
	}
	if g.Status != GiftStatusComprado && g.CompradoPor != nil {
		return errors.New("buyer info on non-purchased gift")
	}
	return nil
}
