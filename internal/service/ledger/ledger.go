package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/hugohenrick/bizit/internal/domain/access"
	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/hugohenrick/bizit/pkg/logger"
)

// DefaultMaxRetries é o número de novas tentativas após um conflito de concorrência
const DefaultMaxRetries = 3

// Ledger é o único componente que altera a quantidade dos itens de estoque
type Ledger struct {
	store      Store
	items      stock.Repository
	maxRetries int
	logger     logger.Logger
}

// NewLedger cria uma nova instância de Ledger
func NewLedger(store Store, items stock.Repository, maxRetries int, log logger.Logger) *Ledger {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Ledger{
		store:      store,
		items:      items,
		maxRetries: maxRetries,
		logger:     log,
	}
}

// Run executa fn em uma transação, repetindo apenas em conflito de concorrência
func (l *Ledger) Run(ctx context.Context, fn func(tx Tx) error) error {
	var err error
	for attempt := 0; attempt <= l.maxRetries; attempt++ {
		err = l.store.InTx(ctx, fn)
		if err == nil || !errors.Is(err, apperr.ErrConcurrency) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		l.logger.Warn("conflito de concorrência no ledger", "attempt", attempt+1, "error", err)
	}
	return apperr.Concurrency(err, "operação abandonada após %d tentativas", l.maxRetries+1)
}

// Apply aplica delta ao item dentro de tx e registra a movimentação
func (l *Ledger) Apply(ctx context.Context, tx Tx, scope access.Scope, itemID string, delta int, reason stock.MovementReason) (*stock.Item, error) {
	item, err := l.lock(ctx, tx, scope, itemID)
	if err != nil {
		return nil, err
	}

	movement, err := l.shift(item, delta, reason, scope.Actor.ID)
	if err != nil {
		return nil, err
	}
	if err := l.persist(ctx, tx, item, movement); err != nil {
		return nil, err
	}
	return item, nil
}

// AdjustQuantity aplica um ajuste manual com sinal à quantidade do item
func (l *Ledger) AdjustQuantity(ctx context.Context, scope access.Scope, itemID string, delta int, reason stock.MovementReason) (*stock.Item, error) {
	if err := scope.Require(scope.Actor.CanManageStock(), "ajustar estoque"); err != nil {
		return nil, err
	}
	if !reason.Valid() {
		return nil, apperr.Validation("motivo de movimentação inválido: %q", reason)
	}

	var item *stock.Item
	err := l.Run(ctx, func(tx Tx) error {
		var err error
		item, err = l.Apply(ctx, tx, scope, itemID, delta, reason)
		return err
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("estoque ajustado", "item_id", itemID, "delta", delta, "reason", reason, "quantity", item.Quantity)
	return item, nil
}

// CreateItem cria um item com a quantidade inicial registrada como movimentação
func (l *Ledger) CreateItem(ctx context.Context, scope access.Scope, attrs stock.Attributes, quantity int) (*stock.Item, error) {
	if err := scope.Require(scope.Actor.CanManageStock(), "cadastrar item"); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, apperr.InvalidQuantity("quantidade inicial não pode ser negativa")
	}

	item, err := stock.NewItem(scope.OrgID, attrs)
	if err != nil {
		return nil, err
	}

	err = l.Run(ctx, func(tx Tx) error {
		created := *item
		var movement *stock.Movement
		if quantity > 0 {
			if err := created.ApplyDelta(quantity, created.CreatedAt); err != nil {
				return err
			}
			movement = stock.NewMovement(&created, quantity, stock.ReasonInitial, scope.Actor.ID, created.CreatedAt)
		}
		if err := tx.InsertItem(ctx, &created); err != nil {
			return err
		}
		if movement != nil {
			if err := tx.InsertMovement(ctx, movement); err != nil {
				return err
			}
		}
		item = &created
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("item de estoque criado", "item_id", item.ID, "org_id", item.OrgID, "quantity", item.Quantity)
	return item, nil
}

// UpdateItem aplica alterações parciais. Mudança de quantidade vira um ajuste no histórico.
func (l *Ledger) UpdateItem(ctx context.Context, scope access.Scope, itemID string, patch stock.Patch, quantity *int) (*stock.Item, error) {
	if err := scope.Require(scope.Actor.CanManageStock(), "atualizar item"); err != nil {
		return nil, err
	}
	if quantity != nil && *quantity < 0 {
		return nil, apperr.InvalidQuantity("quantidade não pode ser negativa")
	}

	var item *stock.Item
	err := l.Run(ctx, func(tx Tx) error {
		current, err := l.lock(ctx, tx, scope, itemID)
		if err != nil {
			return err
		}
		if err := current.ApplyPatch(patch); err != nil {
			return err
		}

		var movement *stock.Movement
		if quantity != nil && *quantity != current.Quantity {
			movement, err = l.shift(current, *quantity-current.Quantity, stock.ReasonAdjustment, scope.Actor.ID)
			if err != nil {
				return err
			}
		}
		if err := l.persist(ctx, tx, current, movement); err != nil {
			return err
		}
		item = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("item de estoque atualizado", "item_id", item.ID)
	return item, nil
}

// DeleteItem remove um item de estoque. Vendas e perdas já registradas são mantidas.
func (l *Ledger) DeleteItem(ctx context.Context, scope access.Scope, itemID string) error {
	if err := scope.Require(scope.Actor.CanManageStock(), "remover item"); err != nil {
		return err
	}

	err := l.Run(ctx, func(tx Tx) error {
		if _, err := l.lock(ctx, tx, scope, itemID); err != nil {
			return err
		}
		return tx.DeleteItem(ctx, itemID)
	})
	if err != nil {
		return err
	}

	l.logger.Info("item de estoque removido", "item_id", itemID)
	return nil
}

// GetItem busca um item da organização
func (l *Ledger) GetItem(ctx context.Context, scope access.Scope, itemID string) (*stock.Item, error) {
	if err := scope.Require(scope.Actor.CanViewStock(), "consultar estoque"); err != nil {
		return nil, err
	}
	item, err := l.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := scope.Owns(item.OrgID); err != nil {
		return nil, err
	}
	return item, nil
}

// ListStock lista os itens da organização
func (l *Ledger) ListStock(ctx context.Context, scope access.Scope) ([]*stock.Item, error) {
	if err := scope.Require(scope.Actor.CanViewStock(), "consultar estoque"); err != nil {
		return nil, err
	}
	return l.items.ListByOrg(ctx, scope.OrgID)
}

// ListMovements lista as movimentações mais recentes de um item
func (l *Ledger) ListMovements(ctx context.Context, scope access.Scope, itemID string, limit int) ([]*stock.Movement, error) {
	if _, err := l.GetItem(ctx, scope, itemID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return l.items.ListMovements(ctx, itemID, limit)
}

// lock busca o item bloqueado e confere a organização antes de qualquer regra de negócio
func (l *Ledger) lock(ctx context.Context, tx Tx, scope access.Scope, itemID string) (*stock.Item, error) {
	item, err := tx.GetItemForUpdate(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := scope.Owns(item.OrgID); err != nil {
		return nil, err
	}
	return item, nil
}

func (l *Ledger) shift(item *stock.Item, delta int, reason stock.MovementReason, actorID string) (*stock.Movement, error) {
	if delta == 0 {
		return nil, apperr.InvalidQuantity("movimentação de estoque não pode ser zero")
	}
	now := time.Now()
	if err := item.ApplyDelta(delta, now); err != nil {
		return nil, err
	}
	return stock.NewMovement(item, delta, reason, actorID, now), nil
}

func (l *Ledger) persist(ctx context.Context, tx Tx, item *stock.Item, movement *stock.Movement) error {
	if err := tx.SaveItem(ctx, item); err != nil {
		return err
	}
	if movement == nil {
		return nil
	}
	return tx.InsertMovement(ctx, movement)
}
