package access

import (
	"github.com/hugohenrick/bizit/internal/domain/apperr"
)

// Role representa o papel do usuário na organização
type Role string

// Department representa o setor de um funcionário
type Department string

// Constantes para Role
const (
	RoleOwner    Role = "owner"    // Dono de uma ou mais organizações
	RoleAdmin    Role = "admin"    // Administrador da organização
	RoleEmployee Role = "employee" // Funcionário de um setor
)

// Constantes para Department
const (
	DepartmentStock Department = "stock"
	DepartmentSales Department = "sales"
)

// Actor representa o usuário autenticado que executa uma operação
type Actor struct {
	ID         string     `json:"id"`
	OrgID      string     `json:"org_id"`
	Role       Role       `json:"role"`
	Department Department `json:"department,omitempty"`
}

// Valid verifica se o papel informado é conhecido
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// IsManager indica dono ou administrador
func (a Actor) IsManager() bool {
	return a.Role == RoleOwner || a.Role == RoleAdmin
}

func (a Actor) inDepartment(departments ...Department) bool {
	if a.Role != RoleEmployee {
		return false
	}
	for _, d := range departments {
		if a.Department == d {
			return true
		}
	}
	return false
}

// CanManageStock permite criar, editar, remover e ajustar itens de estoque
func (a Actor) CanManageStock() bool {
	return a.IsManager() || a.inDepartment(DepartmentStock)
}

// CanViewStock permite consultar o estoque
func (a Actor) CanViewStock() bool {
	return a.IsManager() || a.inDepartment(DepartmentStock, DepartmentSales)
}

// CanRecordSales permite registrar e consultar vendas
func (a Actor) CanRecordSales() bool {
	return a.IsManager() || a.inDepartment(DepartmentSales, DepartmentStock)
}

// CanReportLoss permite registrar perdas. Qualquer membro da organização pode reportar.
func (a Actor) CanReportLoss() bool {
	return a.Role.Valid()
}

// CanViewFinance permite consultar o resumo financeiro e o histórico de perdas
func (a Actor) CanViewFinance() bool {
	return a.IsManager()
}

// CanManageSuppliers permite cadastrar fornecedores e acompanhar remessas
func (a Actor) CanManageSuppliers() bool {
	return a.IsManager() || a.inDepartment(DepartmentStock)
}

// CanRateShipments permite avaliar remessas recebidas
func (a Actor) CanRateShipments() bool {
	return a.IsManager()
}

// Scope é a partição de organização de uma requisição
type Scope struct {
	OrgID string
	Actor Actor
}

// NewScope cria um escopo para o ator na organização alvo
func NewScope(orgID string, actor Actor) Scope {
	return Scope{OrgID: orgID, Actor: actor}
}

// Require retorna erro de autorização quando a permissão não é concedida
func (s Scope) Require(allowed bool, operation string) error {
	if s.OrgID == "" {
		return apperr.Authorization("organização não informada para %s", operation)
	}
	if !allowed {
		return apperr.Authorization("permissão insuficiente para %s", operation)
	}
	return nil
}

// Owns verifica se o registro pertence à organização do escopo
func (s Scope) Owns(recordOrgID string) error {
	if recordOrgID != s.OrgID {
		return apperr.Authorization("registro pertence a outra organização")
	}
	return nil
}
