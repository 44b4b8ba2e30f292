package loss

import (
	"context"

	"github.com/hugohenrick/bizit/internal/domain/period"
)

// Repository define as consultas de perdas. A gravação ocorre na transação do ledger.
type Repository interface {
	// ListByOrg lista as perdas da organização dentro da janela, mais recentes primeiro
	ListByOrg(ctx context.Context, orgID string, window period.Window) ([]*Record, error)
}
