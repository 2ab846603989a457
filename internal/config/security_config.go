// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityStaff                       // Access token with ADMIN or STAFF role
	SecurityAdmin                       // Access token with ADMIN role
)

// Route names registered on the HTTP router.
const (
	RouteLogin = "auth.login"

	RouteListUsers  = "users.list"
	RouteCreateUser = "users.create"

	RouteGetTariff    = "tariff.get"
	RouteUpdateTariff = "tariff.update"

	RouteListTools        = "tools.list"
	RouteGetTool          = "tools.get"
	RouteCreateTool       = "tools.create"
	RouteUpdateTool       = "tools.update"
	RouteAdjustStock      = "tools.adjust_stock"
	RouteDecommissionTool = "tools.decommission"

	RouteListClients        = "clients.list"
	RouteCreateClient       = "clients.create"
	RouteGetClient          = "clients.get"
	RouteUpdateClient       = "clients.update"
	RouteUpdateClientStatus = "clients.update_status"
	RouteReactivateClient   = "clients.reactivate"

	RouteListLoans      = "loans.list"
	RouteCreateLoan     = "loans.create"
	RouteActiveLoans    = "loans.active"
	RouteLateLoans      = "loans.late"
	RouteGetLoan        = "loans.get"
	RouteUnpaidLoans    = "loans.unpaid_by_client"
	RouteReturnLoan     = "loans.return"
	RouteMarkLoanAsPaid = "loans.pay"

	RouteToolMovements  = "movements.by_tool"
	RouteRangeMovements = "movements.by_date"

	RouteReportLoans    = "reports.loans"
	RouteReportLate     = "reports.clients_late"
	RouteReportRestrict = "reports.clients_restricted"
	RouteReportTopTools = "reports.tools_top"
)

// EndpointSecurityConfig maps route names to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Public
	RouteLogin: SecurityPublic,

	// Administration
	RouteListUsers:          SecurityAdmin,
	RouteCreateUser:         SecurityAdmin,
	RouteGetTariff:          SecurityAdmin,
	RouteUpdateTariff:       SecurityAdmin,
	RouteUpdateTool:         SecurityAdmin,
	RouteAdjustStock:        SecurityAdmin,
	RouteDecommissionTool:   SecurityAdmin,
	RouteUpdateClientStatus: SecurityAdmin,

	// Counter operations
	RouteListTools:        SecurityStaff,
	RouteGetTool:          SecurityStaff,
	RouteCreateTool:       SecurityStaff,
	RouteListClients:      SecurityStaff,
	RouteCreateClient:     SecurityStaff,
	RouteGetClient:        SecurityStaff,
	RouteUpdateClient:     SecurityStaff,
	RouteReactivateClient: SecurityStaff,
	RouteListLoans:        SecurityStaff,
	RouteCreateLoan:       SecurityStaff,
	RouteActiveLoans:      SecurityStaff,
	RouteLateLoans:        SecurityStaff,
	RouteGetLoan:          SecurityStaff,
	RouteUnpaidLoans:      SecurityStaff,
	RouteReturnLoan:       SecurityStaff,
	RouteMarkLoanAsPaid:   SecurityStaff,
	RouteToolMovements:    SecurityStaff,
	RouteRangeMovements:   SecurityStaff,
	RouteReportLoans:      SecurityStaff,
	RouteReportLate:       SecurityStaff,
	RouteReportRestrict:   SecurityStaff,
	RouteReportTopTools:   SecurityStaff,
}

// GetSecurityLevel returns the security level for a given route name
func GetSecurityLevel(route string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[route]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAdmin
}

// Allows reports whether a caller with role may use an endpoint at level.
func (l SecurityLevel) Allows(role string) bool {
	switch l {
	case SecurityPublic:
		return true
	case SecurityStaff:
		return role == "ADMIN" || role == "STAFF"
	default:
		return role == "ADMIN"
	}
}
