package loss

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// Reason representa o motivo da baixa
type Reason string

const (
	ReasonDamaged     Reason = "Damaged"
	ReasonStolen      Reason = "Stolen"
	ReasonExpired     Reason = "Expired"
	ReasonOperational Reason = "Operational"
	ReasonOther       Reason = "Other"
)

// ParseReason converte o texto recebido em um motivo conhecido
func ParseReason(value string) (Reason, error) {
	for _, r := range []Reason{ReasonDamaged, ReasonStolen, ReasonExpired, ReasonOperational, ReasonOther} {
		if strings.EqualFold(value, string(r)) {
			return r, nil
		}
	}
	return "", apperr.Validation("motivo de perda inválido: %q", value)
}

// Record representa uma baixa de estoque. É imutável depois de criada.
type Record struct {
	ID            string          `json:"id"`
	OrgID         string          `json:"org_id"`
	StockItemID   string          `json:"stock_item_id"`
	StockItemName string          `json:"stock_item_name"`
	Quantity      int             `json:"quantity"`
	CostAtLoss    decimal.Decimal `json:"cost_at_loss"` // Custo unitário no momento da perda
	TotalLoss     decimal.Decimal `json:"total_loss"`   // quantidade × custo unitário
	Reason        Reason          `json:"reason"`
	Notes         string          `json:"notes,omitempty"`
	ReportedBy    string          `json:"reported_by"`
	LossDate      time.Time       `json:"loss_date"`
}

// NewRecord cria o registro de uma perda já debitada do item.
// A perda é valorizada pelo custo de aquisição, nunca pelo preço de venda.
func NewRecord(item *stock.Item, quantity int, reason Reason, notes, reportedBy string, at time.Time) (*Record, error) {
	if quantity <= 0 {
		return nil, apperr.InvalidQuantity("quantidade perdida deve ser maior que zero")
	}

	return &Record{
		ID:            uuid.New().String(),
		OrgID:         item.OrgID,
		StockItemID:   item.ID,
		StockItemName: item.Name,
		Quantity:      quantity,
		CostAtLoss:    item.CostPrice,
		TotalLoss:     item.CostPrice.Mul(decimal.NewFromInt(int64(quantity))),
		Reason:        reason,
		Notes:         strings.TrimSpace(notes),
		ReportedBy:    reportedBy,
		LossDate:      at,
	}, nil
}
