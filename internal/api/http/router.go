package http

import (
	"net/http"

	"toollending-backend/internal/config"

	"github.com/gorilla/mux"
)

type Handlers struct {
	User     *UserHandler
	Tool     *ToolHandler
	Client   *ClientHandler
	Loan     *LoanHandler
	Movement *MovementHandler
	Report   *ReportHandler
}

// NewRouter registers every API route under /api/v1. Route names key the
// endpoint security table, so each route must be named.
func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.NotFoundHandler = router.NotFoundHandler
	api.MethodNotAllowedHandler = router.MethodNotAllowedHandler
	api.Use(Recoverer, RequestLogger, auth.Handler)

	api.HandleFunc("/auth/login", h.User.Login).Methods(http.MethodPost).Name(config.RouteLogin)

	api.HandleFunc("/users", h.User.ListUsers).Methods(http.MethodGet).Name(config.RouteListUsers)
	api.HandleFunc("/users", h.User.CreateUser).Methods(http.MethodPost).Name(config.RouteCreateUser)

	api.HandleFunc("/tariff", h.Tool.GetTariff).Methods(http.MethodGet).Name(config.RouteGetTariff)
	api.HandleFunc("/tariff", h.Tool.UpdateTariff).Methods(http.MethodPut).Name(config.RouteUpdateTariff)

	// Tools
	api.HandleFunc("/tools", h.Tool.ListTools).Methods(http.MethodGet).Name(config.RouteListTools)
	api.HandleFunc("/tools", h.Tool.CreateTool).Methods(http.MethodPost).Name(config.RouteCreateTool)
	api.HandleFunc("/tools/{id:[0-9]+}", h.Tool.GetTool).Methods(http.MethodGet).Name(config.RouteGetTool)
	api.HandleFunc("/tools/{id:[0-9]+}", h.Tool.UpdateTool).Methods(http.MethodPut).Name(config.RouteUpdateTool)
	api.HandleFunc("/tools/{id:[0-9]+}/stock", h.Tool.AdjustStock).Methods(http.MethodPatch).Name(config.RouteAdjustStock)
	api.HandleFunc("/tools/{id:[0-9]+}/decommission", h.Tool.DecommissionTool).Methods(http.MethodPatch).Name(config.RouteDecommissionTool)

	// Clients
	api.HandleFunc("/clients", h.Client.ListClients).Methods(http.MethodGet).Name(config.RouteListClients)
	api.HandleFunc("/clients", h.Client.CreateClient).Methods(http.MethodPost).Name(config.RouteCreateClient)
	api.HandleFunc("/clients/{id:[0-9]+}", h.Client.GetClient).Methods(http.MethodGet).Name(config.RouteGetClient)
	api.HandleFunc("/clients/{id:[0-9]+}", h.Client.UpdateClient).Methods(http.MethodPut).Name(config.RouteUpdateClient)
	api.HandleFunc("/clients/{id:[0-9]+}/status", h.Client.UpdateStatus).Methods(http.MethodPatch).Name(config.RouteUpdateClientStatus)
	api.HandleFunc("/clients/{id:[0-9]+}/reactivate", h.Client.Reactivate).Methods(http.MethodPost).Name(config.RouteReactivateClient)

	// Loans
	api.HandleFunc("/loans", h.Loan.ListLoans).Methods(http.MethodGet).Name(config.RouteListLoans)
	api.HandleFunc("/loans", h.Loan.CreateLoan).Methods(http.MethodPost).Name(config.RouteCreateLoan)
	api.HandleFunc("/loans/active", h.Loan.ActiveLoans).Methods(http.MethodGet).Name(config.RouteActiveLoans)
	api.HandleFunc("/loans/late", h.Loan.LateLoans).Methods(http.MethodGet).Name(config.RouteLateLoans)
	api.HandleFunc("/loans/client/{clientId:[0-9]+}/unpaid", h.Loan.UnpaidByClient).Methods(http.MethodGet).Name(config.RouteUnpaidLoans)
	api.HandleFunc("/loans/{id:[0-9]+}", h.Loan.GetLoan).Methods(http.MethodGet).Name(config.RouteGetLoan)
	api.HandleFunc("/loans/{id:[0-9]+}/return", h.Loan.ReturnLoan).Methods(http.MethodPut).Name(config.RouteReturnLoan)
	api.HandleFunc("/loans/{id:[0-9]+}/pay", h.Loan.MarkAsPaid).Methods(http.MethodPatch).Name(config.RouteMarkLoanAsPaid)

	// Kardex
	api.HandleFunc("/movements/tool/{toolId:[0-9]+}", h.Movement.ByTool).Methods(http.MethodGet).Name(config.RouteToolMovements)
	api.HandleFunc("/movements/date", h.Movement.ByDate).Methods(http.MethodGet).Name(config.RouteRangeMovements)

	// Reports
	api.HandleFunc("/reports/loans", h.Report.LoansByStatus).Methods(http.MethodGet).Name(config.RouteReportLoans)
	api.HandleFunc("/reports/clients/late", h.Report.ClientsWithLateLoans).Methods(http.MethodGet).Name(config.RouteReportLate)
	api.HandleFunc("/reports/clients/restricted", h.Report.RestrictedClients).Methods(http.MethodGet).Name(config.RouteReportRestrict)
	api.HandleFunc("/reports/tools/top", h.Report.TopTools).Methods(http.MethodGet).Name(config.RouteReportTopTools)

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeErrorBody(w, http.StatusNotFound, CodeNotFound, "route not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeErrorBody(w, http.StatusMethodNotAllowed, CodeInvalidOperation, "method not allowed")
}
