package reports

import (
	"context"
	"fmt"

	"github.com/hugohenrick/bizit/internal/domain/access"
	"github.com/hugohenrick/bizit/internal/domain/finance"
	"github.com/hugohenrick/bizit/internal/domain/loss"
	"github.com/hugohenrick/bizit/internal/domain/period"
	"github.com/hugohenrick/bizit/internal/domain/sale"
	"github.com/hugohenrick/bizit/internal/domain/stock"
)

// Service monta os relatórios financeiros. Não faz escritas.
type Service struct {
	sales  sale.Repository
	losses loss.Repository
	items  stock.Repository
}

// NewService cria uma nova instância de Service
func NewService(sales sale.Repository, losses loss.Repository, items stock.Repository) *Service {
	return &Service{sales: sales, losses: losses, items: items}
}

// GetFinancialSummary calcula receita, CMV, perdas e lucros da janela
func (s *Service) GetFinancialSummary(ctx context.Context, scope access.Scope, window period.Window) (finance.Summary, error) {
	if err := scope.Require(scope.Actor.CanViewFinance(), "consultar resumo financeiro"); err != nil {
		return finance.Summary{}, err
	}
	if err := window.Validate(); err != nil {
		return finance.Summary{}, err
	}

	sales, err := s.sales.ListByOrg(ctx, scope.OrgID, window)
	if err != nil {
		return finance.Summary{}, fmt.Errorf("erro ao carregar vendas: %w", err)
	}
	losses, err := s.losses.ListByOrg(ctx, scope.OrgID, window)
	if err != nil {
		return finance.Summary{}, fmt.Errorf("erro ao carregar perdas: %w", err)
	}

	return finance.Summarize(sales, losses, window), nil
}

// Valuation totaliza o valor de venda e de custo do estoque atual
func (s *Service) Valuation(ctx context.Context, scope access.Scope) (finance.InventoryValuation, error) {
	if err := scope.Require(scope.Actor.CanViewFinance(), "consultar valoração do estoque"); err != nil {
		return finance.InventoryValuation{}, err
	}

	items, err := s.items.ListByOrg(ctx, scope.OrgID)
	if err != nil {
		return finance.InventoryValuation{}, fmt.Errorf("erro ao carregar estoque: %w", err)
	}
	return finance.ValuateInventory(items), nil
}
