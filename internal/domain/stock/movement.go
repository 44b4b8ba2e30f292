package stock

import (
	"time"

	"github.com/google/uuid"
)

// MovementReason identifica a origem de um ajuste de quantidade
type MovementReason string

const (
	ReasonInitial    MovementReason = "initial"
	ReasonSale       MovementReason = "sale"
	ReasonLoss       MovementReason = "loss"
	ReasonAdjustment MovementReason = "adjustment"
	ReasonReceipt    MovementReason = "receipt"
)

// Valid verifica se o motivo é conhecido
func (r MovementReason) Valid() bool {
	switch r {
	case ReasonInitial, ReasonSale, ReasonLoss, ReasonAdjustment, ReasonReceipt:
		return true
	}
	return false
}

// Movement é o lançamento imutável de um ajuste de quantidade
type Movement struct {
	ID            string         `json:"id"`
	OrgID         string         `json:"org_id"`
	StockItemID   string         `json:"stock_item_id"`
	Delta         int            `json:"delta"`
	Reason        MovementReason `json:"reason"`
	QuantityAfter int            `json:"quantity_after"`
	ActorID       string         `json:"actor_id"`
	CreatedAt     time.Time      `json:"created_at"`
}

// NewMovement cria o lançamento de um ajuste já aplicado ao item
func NewMovement(item *Item, delta int, reason MovementReason, actorID string, at time.Time) *Movement {
	return &Movement{
		ID:            uuid.New().String(),
		OrgID:         item.OrgID,
		StockItemID:   item.ID,
		Delta:         delta,
		Reason:        reason,
		QuantityAfter: item.Quantity,
		ActorID:       actorID,
		CreatedAt:     at,
	}
}
