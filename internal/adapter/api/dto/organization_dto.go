package dto

// OrganizationRequest representa os dados de uma nova organização
type OrganizationRequest struct {
	Name string `json:"name" binding:"required"`
}
