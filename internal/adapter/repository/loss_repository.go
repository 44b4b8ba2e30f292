package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/bizit/internal/domain/loss"
	"github.com/hugohenrick/bizit/internal/domain/period"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LossRepository implementa a interface loss.Repository
type LossRepository struct {
	db *pgxpool.Pool
}

// NewLossRepository cria uma nova instância de LossRepository
func NewLossRepository(db *pgxpool.Pool) loss.Repository {
	return &LossRepository{db: db}
}

// ListByOrg implementa loss.Repository.ListByOrg
func (r *LossRepository) ListByOrg(ctx context.Context, orgID string, window period.Window) ([]*loss.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+lossColumns+` FROM losses
		WHERE org_id = $1
			AND ($2::timestamptz IS NULL OR loss_date >= $2)
			AND ($3::timestamptz IS NULL OR loss_date <= $3)
		ORDER BY loss_date DESC`,
		orgID, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar perdas: %w", err)
	}
	return collect(rows, scanLoss)
}
