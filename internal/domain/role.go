package domain

// Role identifies a backoffice user role. Roles gate which departure groups
// are visible on the operations dashboard; they carry no other authority here
// (authentication happens upstream in the host application).
type Role string

const (
	RoleAdministrator  Role = "administrator"
	RoleTravelDesigner Role = "travel_designer"
	RoleSalesAgent     Role = "sales_agent"
	RoleViewer         Role = "viewer"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleTravelDesigner, RoleSalesAgent, RoleViewer:
		return true
	}
	return false
}

// SeesPendingGroups reports whether the role may see departure groups that
// have not been validated yet. Administrators and travel designers work the
// full pipeline; everyone else only sees confirmed departures.
func (r Role) SeesPendingGroups() bool {
	return r == RoleAdministrator || r == RoleTravelDesigner
}

// String returns the role as a string.
func (r Role) String() string {
	return string(r)
}
