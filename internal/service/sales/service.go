package sales

import (
	"context"
	"time"

	"github.com/hugohenrick/bizit/internal/domain/access"
	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/period"
	"github.com/hugohenrick/bizit/internal/domain/sale"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/hugohenrick/bizit/internal/service/ledger"
	"github.com/hugohenrick/bizit/pkg/logger"
)

// Service registra vendas debitando o estoque pelo ledger
type Service struct {
	ledger *ledger.Ledger
	sales  sale.Repository
	logger logger.Logger
}

// NewService cria uma nova instância de Service
func NewService(l *ledger.Ledger, sales sale.Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{ledger: l, sales: sales, logger: log}
}

// RecordSale debita a quantidade vendida e grava a venda na mesma transação.
// Preço e custo são copiados do item no momento da venda.
func (s *Service) RecordSale(ctx context.Context, scope access.Scope, itemID string, quantity int) (*sale.Record, error) {
	if err := scope.Require(scope.Actor.CanRecordSales(), "registrar venda"); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, apperr.InvalidQuantity("quantidade vendida deve ser maior que zero")
	}

	var record *sale.Record
	err := s.ledger.Run(ctx, func(tx ledger.Tx) error {
		item, err := s.ledger.Apply(ctx, tx, scope, itemID, -quantity, stock.ReasonSale)
		if err != nil {
			return err
		}
		record, err = sale.NewRecord(item, quantity, scope.Actor.ID, time.Now())
		if err != nil {
			return err
		}
		return tx.InsertSale(ctx, record)
	})
	if err != nil {
		s.logger.Debug("venda rejeitada", "item_id", itemID, "quantity", quantity, "error", err)
		return nil, err
	}

	s.logger.Info("venda registrada", "sale_id", record.ID, "item_id", itemID, "quantity", quantity, "total", record.TotalPrice.String())
	return record, nil
}

// ListSales lista as vendas da organização na janela, mais recentes primeiro
func (s *Service) ListSales(ctx context.Context, scope access.Scope, window period.Window) ([]*sale.Record, error) {
	if err := scope.Require(scope.Actor.CanRecordSales(), "consultar vendas"); err != nil {
		return nil, err
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}
	return s.sales.ListByOrg(ctx, scope.OrgID, window)
}
