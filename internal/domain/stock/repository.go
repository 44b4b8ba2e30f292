package stock

import (
	"context"
)

// Repository define as consultas de estoque. Escritas passam pelo ledger.
type Repository interface {
	// FindByID busca um item pelo ID, sem filtro de organização
	FindByID(ctx context.Context, id string) (*Item, error)

	// ListByOrg lista os itens de uma organização, mais recentes primeiro
	ListByOrg(ctx context.Context, orgID string) ([]*Item, error)

	// ListMovements lista os lançamentos de um item, mais recentes primeiro
	ListMovements(ctx context.Context, itemID string, limit int) ([]*Movement, error)
}
