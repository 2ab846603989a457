package http

import (
	"net/http"
	"strings"
	"time"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/service"
)

type MovementHandler struct {
	movementSvc service.MovementService
}

func NewMovementHandler(movementSvc service.MovementService) *MovementHandler {
	return &MovementHandler{movementSvc: movementSvc}
}

func (h *MovementHandler) ByTool(w http.ResponseWriter, r *http.Request) {
	toolID, err := pathID(r, "toolId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var records []domain.MovementRecord
	if t := strings.TrimSpace(r.URL.Query().Get("type")); t != "" {
		records, err = h.movementSvc.GetMovementsByToolIDAndType(r.Context(), toolID, domain.MovementType(strings.ToUpper(t)))
	} else {
		records, err = h.movementSvc.GetMovementsByToolID(r.Context(), toolID)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapMovements(records))
}

func (h *MovementHandler) ByDate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, err := optionalInstant("start", q.Get("start"), false)
	if err != nil {
		writeError(w, r, err)
		return
	}
	end, err := optionalInstant("end", q.Get("end"), true)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var records []domain.MovementRecord
	if t := strings.TrimSpace(q.Get("type")); t != "" {
		records, err = h.movementSvc.GetMovementsByDateRangeAndType(r.Context(), start, end, domain.MovementType(strings.ToUpper(t)))
	} else {
		records, err = h.movementSvc.GetMovementsByDateRange(r.Context(), start, end)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapMovements(records))
}

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

func (h *ReportHandler) LoansByStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to, err := dateRange(q.Get("from"), q.Get("to"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	loans, err := h.reportSvc.LoansByStatus(r.Context(), q.Get("status"), from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapLoans(loans))
}

func (h *ReportHandler) ClientsWithLateLoans(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to, err := dateRange(q.Get("from"), q.Get("to"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	clients, err := h.reportSvc.ClientsWithLateLoans(r.Context(), from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(clients))
}

func (h *ReportHandler) RestrictedClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.reportSvc.RestrictedClients(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(clients))
}

func (h *ReportHandler) TopTools(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to, err := dateRange(q.Get("from"), q.Get("to"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	rows, err := h.reportSvc.TopTools(r.Context(), from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapToolRanking(rows))
}

func dateRange(fromRaw, toRaw string) (from, to *time.Time, err error) {
	if from, err = optionalDate("from", fromRaw); err != nil {
		return nil, nil, err
	}
	if to, err = optionalDate("to", toRaw); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
