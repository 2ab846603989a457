package http

import (
	"context"
	"net/http"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/service"
)

type LoanHandler struct {
	loanSvc service.LoanService
	userSvc service.UserService
}

func NewLoanHandler(loanSvc service.LoanService, userSvc service.UserService) *LoanHandler {
	return &LoanHandler{loanSvc: loanSvc, userSvc: userSvc}
}

func (h *LoanHandler) ListLoans(w http.ResponseWriter, r *http.Request) {
	h.writeLoans(w, r, h.loanSvc.GetAllLoans)
}

func (h *LoanHandler) ActiveLoans(w http.ResponseWriter, r *http.Request) {
	h.writeLoans(w, r, h.loanSvc.GetActiveLoans)
}

func (h *LoanHandler) LateLoans(w http.ResponseWriter, r *http.Request) {
	h.writeLoans(w, r, h.loanSvc.GetLateLoans)
}

func (h *LoanHandler) writeLoans(w http.ResponseWriter, r *http.Request, list func(ctx context.Context) ([]domain.Loan, error)) {
	loans, err := list(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapLoans(loans))
}

func (h *LoanHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	loan, err := h.loanSvc.GetLoanByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapLoan(loan))
}

func (h *LoanHandler) UnpaidByClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathID(r, "clientId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	loans, err := h.loanSvc.GetUnpaidReceivedLoansByClientID(r.Context(), clientID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapLoans(loans))
}

func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req CreateLoanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	start, err := optionalDate("start_date", req.StartDate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	due, err := optionalDate("due_date", req.DueDate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	user, err := h.userSvc.ResolveActingUser(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	loan, err := h.loanSvc.CreateLoan(r.Context(), req.ClientID, req.ToolID, start, due, user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, MapLoan(loan))
}

func (h *LoanHandler) ReturnLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req ReturnLoanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	returned, err := optionalDate("return_date", req.ReturnDate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	user, err := h.userSvc.ResolveActingUser(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	loan, err := h.loanSvc.ReturnLoan(r.Context(), id, req.ToolID, req.Damaged, req.Irreparable, user, returned)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapLoan(loan))
}

func (h *LoanHandler) MarkAsPaid(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	loan, err := h.loanSvc.MarkLoanAsPaid(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapLoan(loan))
}
