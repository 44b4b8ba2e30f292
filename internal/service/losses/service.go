package losses

import (
	"context"
	"time"

	"github.com/hugohenrick/bizit/internal/domain/access"
	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/loss"
	"github.com/hugohenrick/bizit/internal/domain/period"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/hugohenrick/bizit/internal/service/ledger"
	"github.com/hugohenrick/bizit/pkg/logger"
)

// Service registra baixas de estoque por perda
type Service struct {
	ledger *ledger.Ledger
	losses loss.Repository
	logger logger.Logger
}

// NewService cria uma nova instância de Service
func NewService(l *ledger.Ledger, losses loss.Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{ledger: l, losses: losses, logger: log}
}

// ReportLoss debita o estoque e grava a perda valorada pelo custo do item
func (s *Service) ReportLoss(ctx context.Context, scope access.Scope, itemID string, quantity int, reason loss.Reason, notes string) (*loss.Record, error) {
	if err := scope.Require(scope.Actor.CanReportLoss(), "registrar perda"); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, apperr.InvalidQuantity("quantidade perdida deve ser maior que zero")
	}
	reason, err := loss.ParseReason(string(reason))
	if err != nil {
		return nil, err
	}

	var record *loss.Record
	err = s.ledger.Run(ctx, func(tx ledger.Tx) error {
		item, err := s.ledger.Apply(ctx, tx, scope, itemID, -quantity, stock.ReasonLoss)
		if err != nil {
			return err
		}
		record, err = loss.NewRecord(item, quantity, reason, notes, scope.Actor.ID, time.Now())
		if err != nil {
			return err
		}
		return tx.InsertLoss(ctx, record)
	})
	if err != nil {
		s.logger.Debug("perda rejeitada", "item_id", itemID, "quantity", quantity, "error", err)
		return nil, err
	}

	s.logger.Info("perda registrada", "loss_id", record.ID, "item_id", itemID, "reason", reason, "total", record.TotalLoss.String())
	return record, nil
}

// ListLosses lista as perdas da organização na janela, mais recentes primeiro
func (s *Service) ListLosses(ctx context.Context, scope access.Scope, window period.Window) ([]*loss.Record, error) {
	if err := scope.Require(scope.Actor.CanViewFinance(), "consultar perdas"); err != nil {
		return nil, err
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}
	return s.losses.ListByOrg(ctx, scope.OrgID, window)
}
