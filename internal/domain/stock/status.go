package stock

import (
	"github.com/shopspring/decimal"
)

// Status representa o nível de estoque de um item
type Status string

const (
	StatusLow    Status = "low"
	StatusMedium Status = "medium"
	StatusHigh   Status = "high"
)

// Classify calcula o status a partir da quantidade e dos limites.
// "high" a partir de 80% da capacidade; com capacidade zero qualquer saldo positivo é "high".
func Classify(quantity, minThreshold, maxCapacity int) Status {
	if quantity <= minThreshold {
		return StatusLow
	}
	if quantity*5 >= maxCapacity*4 {
		return StatusHigh
	}
	return StatusMedium
}

// Valuation é o valor derivado do saldo de um item
type Valuation struct {
	Value decimal.Decimal `json:"value"` // quantidade × preço de venda
	Cost  decimal.Decimal `json:"cost"`  // quantidade × preço de custo
}

// Valuate calcula o valor de venda e o custo do saldo atual
func Valuate(item *Item) Valuation {
	qty := decimal.NewFromInt(int64(item.Quantity))
	return Valuation{
		Value: qty.Mul(item.Price),
		Cost:  qty.Mul(item.CostPrice),
	}
}
