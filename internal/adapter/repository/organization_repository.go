package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/bizit/internal/domain/organization"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrganizationRepository implementa a interface organization.Repository
type OrganizationRepository struct {
	db *pgxpool.Pool
}

// NewOrganizationRepository cria uma nova instância de OrganizationRepository
func NewOrganizationRepository(db *pgxpool.Pool) organization.Repository {
	return &OrganizationRepository{db: db}
}

// Create implementa organization.Repository.Create
func (r *OrganizationRepository) Create(ctx context.Context, org *organization.Organization) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO organizations (id, name, owner_id, created_at) VALUES ($1, $2, $3, $4)`,
		org.ID, org.Name, org.OwnerID, org.CreatedAt)
	if err != nil {
		return mapTxError(fmt.Errorf("erro ao criar organização: %w", err))
	}
	return nil
}

// FindByID implementa organization.Repository.FindByID
func (r *OrganizationRepository) FindByID(ctx context.Context, id string) (*organization.Organization, error) {
	var org organization.Organization
	err := r.db.QueryRow(ctx,
		`SELECT id, name, owner_id, created_at FROM organizations WHERE id = $1`, id).
		Scan(&org.ID, &org.Name, &org.OwnerID, &org.CreatedAt)
	if err != nil {
		return nil, notFoundOr(err, "organização não encontrada: %s", id)
	}
	return &org, nil
}
