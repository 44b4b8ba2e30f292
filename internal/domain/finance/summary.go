package finance

import (
	"github.com/hugohenrick/bizit/internal/domain/loss"
	"github.com/hugohenrick/bizit/internal/domain/period"
	"github.com/hugohenrick/bizit/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// Summary é o demonstrativo financeiro de um período
type Summary struct {
	Window      period.Window   `json:"window"`
	Revenue     decimal.Decimal `json:"revenue"`
	COGS        decimal.Decimal `json:"cogs"`
	Losses      decimal.Decimal `json:"losses"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
	NetProfit   decimal.Decimal `json:"net_profit"`
	SalesCount  int             `json:"sales_count"`
	LossesCount int             `json:"losses_count"`
}

// Summarize agrega vendas e perdas dentro da janela. Registros fora da janela são ignorados.
// O custo das vendas usa o custo unitário gravado em cada venda.
func Summarize(sales []*sale.Record, losses []*loss.Record, window period.Window) Summary {
	s := Summary{
		Window:  window,
		Revenue: decimal.Zero,
		COGS:    decimal.Zero,
		Losses:  decimal.Zero,
	}

	for _, r := range sales {
		if !window.Contains(r.SaleDate) {
			continue
		}
		s.Revenue = s.Revenue.Add(r.TotalPrice)
		s.COGS = s.COGS.Add(r.Cost())
		s.SalesCount++
	}

	for _, r := range losses {
		if !window.Contains(r.LossDate) {
			continue
		}
		s.Losses = s.Losses.Add(r.TotalLoss)
		s.LossesCount++
	}

	s.GrossProfit = s.Revenue.Sub(s.COGS)
	s.NetProfit = s.Revenue.Sub(s.COGS.Add(s.Losses))
	return s
}
