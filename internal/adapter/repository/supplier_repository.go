package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/supplier"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SupplierRepository implementa a interface supplier.Repository
type SupplierRepository struct {
	db *pgxpool.Pool
}

// NewSupplierRepository cria uma nova instância de SupplierRepository
func NewSupplierRepository(db *pgxpool.Pool) supplier.Repository {
	return &SupplierRepository{db: db}
}

// CreateSupplier implementa supplier.Repository.CreateSupplier
func (r *SupplierRepository) CreateSupplier(ctx context.Context, s *supplier.Supplier) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO suppliers (`+supplierColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.OrgID, s.Name, s.Phone, s.Email, s.Address, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return mapTxError(fmt.Errorf("erro ao criar fornecedor: %w", err))
	}
	return nil
}

// FindSupplierByID implementa supplier.Repository.FindSupplierByID
func (r *SupplierRepository) FindSupplierByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	s, err := scanSupplier(r.db.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err, "fornecedor não encontrado: %s", id)
	}
	return s, nil
}

// ListSuppliers implementa supplier.Repository.ListSuppliers
func (r *SupplierRepository) ListSuppliers(ctx context.Context, orgID string) ([]*supplier.Supplier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE org_id = $1 ORDER BY name ASC, id ASC`, orgID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fornecedores: %w", err)
	}
	return collect(rows, scanSupplier)
}

// UpdateSupplier implementa supplier.Repository.UpdateSupplier
func (r *SupplierRepository) UpdateSupplier(ctx context.Context, s *supplier.Supplier) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE suppliers SET name = $2, phone = $3, email = $4, address = $5, updated_at = $6
		WHERE id = $1`,
		s.ID, s.Name, s.Phone, s.Email, s.Address, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar fornecedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("fornecedor não encontrado: %s", s.ID)
	}
	return nil
}

// CreateShipment implementa supplier.Repository.CreateShipment
func (r *SupplierRepository) CreateShipment(ctx context.Context, s *supplier.Shipment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO shipments (
			id, org_id, supplier_id, stock_item_id, expected_quantity, expected_date,
			notes, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.OrgID, s.SupplierID, nullable(s.StockItemID), s.ExpectedQuantity, s.ExpectedDate,
		s.Notes, s.Status, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return mapTxError(fmt.Errorf("erro ao criar remessa: %w", err))
	}
	return nil
}

// FindShipmentByID implementa supplier.Repository.FindShipmentByID
func (r *SupplierRepository) FindShipmentByID(ctx context.Context, id string) (*supplier.Shipment, error) {
	s, err := scanShipment(r.db.QueryRow(ctx,
		`SELECT `+shipmentColumns+`
		FROM shipments sh JOIN suppliers s ON s.id = sh.supplier_id
		WHERE sh.id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err, "remessa não encontrada: %s", id)
	}
	return s, nil
}

// ListShipments implementa supplier.Repository.ListShipments
func (r *SupplierRepository) ListShipments(ctx context.Context, orgID string) ([]*supplier.Shipment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+shipmentColumns+`
		FROM shipments sh JOIN suppliers s ON s.id = sh.supplier_id
		WHERE sh.org_id = $1
		ORDER BY sh.expected_date ASC, sh.id ASC`, orgID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar remessas: %w", err)
	}
	return collect(rows, scanShipment)
}

// MarkLate implementa supplier.Repository.MarkLate
func (r *SupplierRepository) MarkLate(ctx context.Context, before time.Time) (int, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE shipments SET status = $1, updated_at = NOW()
		WHERE status = $2 AND expected_date < $3`,
		supplier.StatusLate, supplier.StatusPending, before)
	if err != nil {
		return 0, fmt.Errorf("erro ao marcar remessas atrasadas: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
