package access

import (
	"errors"
	"testing"

	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/stretchr/testify/assert"
)

func TestPermissionsByRoleAndDepartment(t *testing.T) {
	owner := Actor{ID: "u1", Role: RoleOwner}
	admin := Actor{ID: "u2", Role: RoleAdmin}
	stockEmployee := Actor{ID: "u3", Role: RoleEmployee, Department: DepartmentStock}
	salesEmployee := Actor{ID: "u4", Role: RoleEmployee, Department: DepartmentSales}
	unassigned := Actor{ID: "u5", Role: RoleEmployee}

	cases := []struct {
		name  string
		actor Actor
		want  [7]bool
	}{
		// manage, view, sales, loss, finance, suppliers, rate
		{"owner", owner, [7]bool{true, true, true, true, true, true, true}},
		{"admin", admin, [7]bool{true, true, true, true, true, true, true}},
		{"stock", stockEmployee, [7]bool{true, true, true, true, false, true, false}},
		{"sales", salesEmployee, [7]bool{false, true, true, true, false, false, false}},
		{"sem setor", unassigned, [7]bool{false, false, false, true, false, false, false}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := tc.actor
			got := [7]bool{
				a.CanManageStock(), a.CanViewStock(), a.CanRecordSales(), a.CanReportLoss(),
				a.CanViewFinance(), a.CanManageSuppliers(), a.CanRateShipments(),
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScopeRequireAndOwns(t *testing.T) {
	scope := NewScope("org-1", Actor{ID: "u1", Role: RoleAdmin})

	assert.NoError(t, scope.Require(true, "teste"))
	assert.True(t, errors.Is(scope.Require(false, "teste"), apperr.ErrAuthorization))
	assert.True(t, errors.Is(NewScope("", scope.Actor).Require(true, "teste"), apperr.ErrAuthorization))

	assert.NoError(t, scope.Owns("org-1"))
	assert.True(t, errors.Is(scope.Owns("org-2"), apperr.ErrAuthorization))
}
