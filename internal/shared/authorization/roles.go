// Package authorization holds the closed set of staff roles and the
// predicates every permission decision goes through.
package authorization

import (
	"fmt"
	"strings"
)

type AdminRole string

const (
	RoleSuperAdmin         AdminRole = "super_admin"
	RoleAdmin              AdminRole = "admin"
	RolePropertySupervisor AdminRole = "property_supervisor"
	RoleCaretaker          AdminRole = "caretaker"
)

var roleLabels = map[AdminRole]string{
	RoleSuperAdmin:         "Super Admin",
	RoleAdmin:              "Admin",
	RolePropertySupervisor: "Property Supervisor",
	RoleCaretaker:          "Caretaker",
}

// AllRoles lists every role in descending privilege order.
func AllRoles() []AdminRole {
	return []AdminRole{RoleSuperAdmin, RoleAdmin, RolePropertySupervisor, RoleCaretaker}
}

func (r AdminRole) String() string {
	return string(r)
}

// Label returns the display name shown to staff.
func (r AdminRole) Label() string {
	return roleLabels[r]
}

func (r AdminRole) IsValid() bool {
	_, ok := roleLabels[r]
	return ok
}

// ParseAdminRole accepts either the stored code or the display label.
// The legacy "Property Manager" label maps to RolePropertySupervisor.
func ParseAdminRole(s string) (AdminRole, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	if norm == "property_manager" {
		return RolePropertySupervisor, nil
	}
	role := AdminRole(norm)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid admin role: %s", s)
	}
	return role, nil
}

// CanOverrideReassignmentLimit reports whether the role may reassign a ticket
// past the reassignment limit.
func CanOverrideReassignmentLimit(r AdminRole) bool {
	return r == RoleSuperAdmin
}

func CanManageAdmins(r AdminRole) bool {
	return r == RoleSuperAdmin
}

func CanManageProperties(r AdminRole) bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

func CanManageTenants(r AdminRole) bool {
	return r == RoleSuperAdmin || r == RoleAdmin || r == RolePropertySupervisor
}

func CanEditJobCards(r AdminRole) bool {
	return r.IsValid()
}

func CanSignOffJobCards(r AdminRole) bool {
	return r == RoleSuperAdmin || r == RoleAdmin || r == RolePropertySupervisor
}

func CanViewReports(r AdminRole) bool {
	return r == RoleSuperAdmin || r == RoleAdmin || r == RolePropertySupervisor
}

// HasPropertyAssignment reports whether an admin of this role keeps a
// property assignment. Only caretakers are tied to a single property.
func HasPropertyAssignment(r AdminRole) bool {
	return r == RoleCaretaker
}
