package supplier

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/bizit/internal/domain/apperr"
)

// Supplier representa um fornecedor da organização
type Supplier struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contact agrupa os dados de contato do fornecedor
type Contact struct {
	Phone   string
	Email   string
	Address string
}

// NewSupplier cria um novo fornecedor
func NewSupplier(orgID, name string, contact Contact) (*Supplier, error) {
	s := &Supplier{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		CreatedAt: time.Now(),
	}
	if err := s.Update(name, contact); err != nil {
		return nil, err
	}
	return s, nil
}

// Update atualiza nome e contato do fornecedor
func (s *Supplier) Update(name string, contact Contact) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperr.Validation("nome do fornecedor não pode ser vazio")
	}

	email := strings.TrimSpace(contact.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return apperr.Validation("email inválido: %s", email)
		}
	}

	s.Name = name
	s.Phone = strings.TrimSpace(contact.Phone)
	s.Email = email
	s.Address = strings.TrimSpace(contact.Address)
	s.UpdatedAt = time.Now()
	return nil
}
