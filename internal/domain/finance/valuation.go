package finance

import (
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// InventoryValuation totaliza o valor do estoque de uma organização
type InventoryValuation struct {
	ItemCount     int                  `json:"item_count"`
	TotalQuantity int                  `json:"total_quantity"`
	TotalValue    decimal.Decimal      `json:"total_value"` // Σ quantidade × preço de venda
	TotalCost     decimal.Decimal      `json:"total_cost"`  // Σ quantidade × preço de custo
	ByStatus      map[stock.Status]int `json:"by_status"`
}

// ValuateInventory soma a valoração de cada item e conta os itens por status
func ValuateInventory(items []*stock.Item) InventoryValuation {
	v := InventoryValuation{
		TotalValue: decimal.Zero,
		TotalCost:  decimal.Zero,
		ByStatus: map[stock.Status]int{
			stock.StatusLow:    0,
			stock.StatusMedium: 0,
			stock.StatusHigh:   0,
		},
	}

	for _, item := range items {
		iv := item.Valuation()
		v.ItemCount++
		v.TotalQuantity += item.Quantity
		v.TotalValue = v.TotalValue.Add(iv.Value)
		v.TotalCost = v.TotalCost.Add(iv.Cost)
		v.ByStatus[item.Status()]++
	}
	return v
}
