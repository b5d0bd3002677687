package permission

import "github.com/estatedesk/estatedesk/internal/shared/authorization"

type Resource string

type Action string

const (
	ResourceTickets    Resource = "tickets"
	ResourceJobCards   Resource = "job_cards"
	ResourceAdmins     Resource = "admins"
	ResourceProperties Resource = "properties"
	ResourceTenants    Resource = "tenants"
	ResourceReports    Resource = "reports"
	ResourceSettings   Resource = "settings"
)

const (
	ActionRead     Action = "read"
	ActionWrite    Action = "write"
	ActionSignOff  Action = "signoff"
	ActionOverride Action = "override"
)

type grant struct {
	resource Resource
	action   Action
	allowed  func(authorization.AdminRole) bool
}

func anyStaff(r authorization.AdminRole) bool { return r.IsValid() }

// grants derives every policy from the authorization predicates so the
// stored rules never drift from the in-process checks.
var grants = []grant{
	{ResourceTickets, ActionRead, anyStaff},
	{ResourceTickets, ActionWrite, anyStaff},
	{ResourceTickets, ActionOverride, authorization.CanOverrideReassignmentLimit},
	{ResourceJobCards, ActionRead, anyStaff},
	{ResourceJobCards, ActionWrite, authorization.CanEditJobCards},
	{ResourceJobCards, ActionSignOff, authorization.CanSignOffJobCards},
	{ResourceAdmins, ActionRead, authorization.CanManageProperties},
	{ResourceAdmins, ActionWrite, authorization.CanManageAdmins},
	{ResourceProperties, ActionRead, anyStaff},
	{ResourceProperties, ActionWrite, authorization.CanManageProperties},
	{ResourceTenants, ActionRead, anyStaff},
	{ResourceTenants, ActionWrite, authorization.CanManageTenants},
	{ResourceReports, ActionRead, authorization.CanViewReports},
	{ResourceSettings, ActionRead, authorization.CanManageProperties},
	{ResourceSettings, ActionWrite, authorization.CanManageAdmins},
}

// DefaultPolicies expands the grant table into casbin rules.
func DefaultPolicies() [][]string {
	var rules [][]string
	for _, g := range grants {
		for _, role := range authorization.AllRoles() {
			if g.allowed(role) {
				rules = append(rules, []string{role.String(), string(g.resource), string(g.action)})
			}
		}
	}
	return rules
}
