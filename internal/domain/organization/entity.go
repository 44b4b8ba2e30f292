package organization

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName  = errors.New("nome não pode ser vazio")
	ErrEmptyOwner = errors.New("dono não pode ser vazio")
)

// Organization representa a partição de um cliente no sistema multi-tenant
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewOrganization cria uma nova organização
func NewOrganization(name, ownerID string) (*Organization, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if ownerID == "" {
		return nil, ErrEmptyOwner
	}

	return &Organization{
		ID:        uuid.New().String(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: time.Now(),
	}, nil
}

// IsOwnedBy verifica se o usuário é o dono da organização
func (o *Organization) IsOwnedBy(userID string) bool {
	return userID != "" && o.OwnerID == userID
}
