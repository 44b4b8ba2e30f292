package sale

import (
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// Record representa uma venda registrada. É imutável depois de criada.
type Record struct {
	ID            string          `json:"id"`
	OrgID         string          `json:"org_id"`
	StockItemID   string          `json:"stock_item_id"`
	StockItemName string          `json:"stock_item_name"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"` // Preço de venda no momento da venda
	UnitCost      decimal.Decimal `json:"unit_cost"`  // Custo unitário no momento da venda
	TotalPrice    decimal.Decimal `json:"total_price"`
	SoldBy        string          `json:"sold_by"`
	SaleDate      time.Time       `json:"sale_date"`
}

// NewRecord cria o registro de uma venda já debitada do item, copiando preço e custo atuais
func NewRecord(item *stock.Item, quantity int, soldBy string, at time.Time) (*Record, error) {
	if quantity <= 0 {
		return nil, apperr.InvalidQuantity("quantidade vendida deve ser maior que zero")
	}

	return &Record{
		ID:            uuid.New().String(),
		OrgID:         item.OrgID,
		StockItemID:   item.ID,
		StockItemName: item.Name,
		Quantity:      quantity,
		UnitPrice:     item.Price,
		UnitCost:      item.CostPrice,
		TotalPrice:    item.Price.Mul(decimal.NewFromInt(int64(quantity))),
		SoldBy:        soldBy,
		SaleDate:      at,
	}, nil
}

// Cost retorna o custo das mercadorias vendidas neste registro
func (r *Record) Cost() decimal.Decimal {
	return r.UnitCost.Mul(decimal.NewFromInt(int64(r.Quantity)))
}
