package organization

import (
	"context"
)

// Repository define as operações de persistência para organizações.
// O cadastro de organizações é feito por um serviço externo; aqui só é necessário
// consultar e, em modo de desenvolvimento, semear registros.
type Repository interface {
	// Create persiste uma nova organização
	Create(ctx context.Context, org *Organization) error

	// FindByID busca uma organização pelo ID
	FindByID(ctx context.Context, id string) (*Organization, error)
}
