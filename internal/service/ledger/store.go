package ledger

import (
	"context"

	"github.com/hugohenrick/bizit/internal/domain/loss"
	"github.com/hugohenrick/bizit/internal/domain/sale"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/hugohenrick/bizit/internal/domain/supplier"
)

// Tx é a unidade de trabalho do ledger. Os métodos ForUpdate mantêm o registro
// bloqueado até o fim da transação.
type Tx interface {
	// GetItemForUpdate busca e bloqueia um item de estoque
	GetItemForUpdate(ctx context.Context, id string) (*stock.Item, error)

	// InsertItem persiste um novo item de estoque
	InsertItem(ctx context.Context, item *stock.Item) error

	// SaveItem grava o item se a versão não mudou desde a leitura e incrementa item.Version
	SaveItem(ctx context.Context, item *stock.Item) error

	// DeleteItem remove o item e seu histórico de movimentações
	DeleteItem(ctx context.Context, id string) error

	InsertMovement(ctx context.Context, m *stock.Movement) error
	InsertSale(ctx context.Context, r *sale.Record) error
	InsertLoss(ctx context.Context, r *loss.Record) error

	// GetShipmentForUpdate busca e bloqueia uma remessa
	GetShipmentForUpdate(ctx context.Context, id string) (*supplier.Shipment, error)

	SaveShipment(ctx context.Context, s *supplier.Shipment) error
}

// Store abre transações. Se fn retorna erro nada é gravado.
// Conflitos de concorrência devem ser retornados como apperr.ErrConcurrency.
type Store interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
}
