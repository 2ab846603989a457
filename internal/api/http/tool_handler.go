package http

import (
	"net/http"
	"strings"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/service"
)

type ToolHandler struct {
	toolSvc   service.ToolService
	tariffSvc service.TariffService
	userSvc   service.UserService
}

func NewToolHandler(toolSvc service.ToolService, tariffSvc service.TariffService, userSvc service.UserService) *ToolHandler {
	return &ToolHandler{toolSvc: toolSvc, tariffSvc: tariffSvc, userSvc: userSvc}
}

func (h *ToolHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.toolSvc.GetAllTools(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(tools))
}

func (h *ToolHandler) GetTool(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	tool, err := h.toolSvc.GetToolByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *ToolHandler) CreateTool(w http.ResponseWriter, r *http.Request) {
	var req CreateToolRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	user, err := h.userSvc.ResolveActingUser(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	tool := &domain.Tool{
		Name:             strings.TrimSpace(req.Name),
		Category:         strings.TrimSpace(req.Category),
		Status:           domain.ToolStatus(strings.ToUpper(req.Status)),
		Stock:            req.Stock,
		ReplacementValue: req.ReplacementValue,
	}
	created, err := h.toolSvc.CreateTool(r.Context(), tool, user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ToolHandler) UpdateTool(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req UpdateToolRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	tool, err := h.toolSvc.UpdateTool(r.Context(), id, strings.TrimSpace(req.Name), strings.TrimSpace(req.Category), req.ReplacementValue)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *ToolHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req AdjustStockRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	user, err := h.userSvc.ResolveActingUser(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	movementType := domain.MovementType(strings.ToUpper(strings.TrimSpace(req.MovementType)))
	tool, err := h.toolSvc.AdjustStock(r.Context(), id, req.QuantityChange, movementType, user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *ToolHandler) DecommissionTool(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	user, err := h.userSvc.ResolveActingUser(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	tool, err := h.toolSvc.DecommissionTool(r.Context(), id, user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *ToolHandler) GetTariff(w http.ResponseWriter, r *http.Request) {
	tariff, err := h.tariffSvc.GetTariff(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tariff)
}

func (h *ToolHandler) UpdateTariff(w http.ResponseWriter, r *http.Request) {
	var req TariffRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	tariff, err := h.tariffSvc.UpdateTariff(r.Context(), domain.Tariff{
		DailyRentFee: req.DailyRentFee,
		DailyLateFee: req.DailyLateFee,
		RepairFee:    req.RepairFee,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tariff)
}
