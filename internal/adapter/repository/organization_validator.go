package repository

import (
	"context"
	"errors"

	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/organization"
	pkgtenant "github.com/hugohenrick/bizit/pkg/tenant"
)

// OrganizationValidator implementa pkgtenant.OrganizationValidator sobre qualquer organization.Repository
type OrganizationValidator struct {
	repository organization.Repository
}

// NewOrganizationValidator cria uma nova instância de OrganizationValidator
func NewOrganizationValidator(repository organization.Repository) pkgtenant.OrganizationValidator {
	return &OrganizationValidator{
		repository: repository,
	}
}

// OwnerOf implementa pkgtenant.OrganizationValidator.OwnerOf
func (v *OrganizationValidator) OwnerOf(ctx context.Context, orgID string) (string, error) {
	if orgID == "" {
		return "", pkgtenant.ErrOrganizationNotSpecified
	}

	org, err := v.repository.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", pkgtenant.ErrOrganizationNotFound
		}
		return "", err
	}

	return org.OwnerID, nil
}
