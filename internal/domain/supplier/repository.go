package supplier

import (
	"context"
	"time"
)

// Repository define as operações de persistência de fornecedores e remessas.
// Recebimento e avaliação de remessas passam pela transação do ledger.
type Repository interface {
	// CreateSupplier persiste um novo fornecedor
	CreateSupplier(ctx context.Context, s *Supplier) error

	// FindSupplierByID busca um fornecedor pelo ID
	FindSupplierByID(ctx context.Context, id string) (*Supplier, error)

	// ListSuppliers lista os fornecedores da organização por nome
	ListSuppliers(ctx context.Context, orgID string) ([]*Supplier, error)

	// UpdateSupplier atualiza nome e contato
	UpdateSupplier(ctx context.Context, s *Supplier) error

	// CreateShipment persiste uma nova remessa
	CreateShipment(ctx context.Context, s *Shipment) error

	// FindShipmentByID busca uma remessa pelo ID, com o nome do fornecedor
	FindShipmentByID(ctx context.Context, id string) (*Shipment, error)

	// ListShipments lista as remessas da organização pela data esperada
	ListShipments(ctx context.Context, orgID string) ([]*Shipment, error)

	// MarkLate marca como atrasadas as remessas pendentes com data esperada anterior a before
	MarkLate(ctx context.Context, before time.Time) (int, error)
}
