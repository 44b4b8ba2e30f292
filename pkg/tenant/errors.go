package tenant

import "errors"

// Erros comuns relacionados ao escopo de organização
var (
	// ErrOrganizationNotSpecified ocorre quando a organização não é informada
	ErrOrganizationNotSpecified = errors.New("organização não especificada")

	// ErrOrganizationNotFound ocorre quando a organização não existe
	ErrOrganizationNotFound = errors.New("organização não encontrada")

	// ErrNotOwner ocorre quando o usuário tenta acessar organização de outro dono
	ErrNotOwner = errors.New("usuário não é dono da organização")
)
