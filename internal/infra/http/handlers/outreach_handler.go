package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cazeai/bizcon-outreach/internal/entity"
	"github.com/cazeai/bizcon-outreach/internal/infra/http/middleware"
	"github.com/cazeai/bizcon-outreach/internal/usecase"
)

type SendOutreachExecutor interface {
	Execute(ctx context.Context, leadIDs []string) *usecase.SendOutreachOutput
}

type GroupedLeadsExecutor interface {
	Execute() (map[string][]entity.Lead, []string, error)
}

type OutreachHandler struct {
	sendUC    SendOutreachExecutor
	groupedUC GroupedLeadsExecutor
}

func NewOutreachHandler(sendUC SendOutreachExecutor, groupedUC GroupedLeadsExecutor) *OutreachHandler {
	return &OutreachHandler{sendUC: sendUC, groupedUC: groupedUC}
}

type SendRequest struct {
	// Lead IDs arrive as strings or numbers depending on the client;
	// everything is compared as a string downstream.
	LeadIDs []interface{} `json:"lead_ids"`
}

func (h *OutreachHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Invalid JSON",
		})
		return
	}

	ids := make([]string, 0, len(req.LeadIDs))
	for _, v := range req.LeadIDs {
		switch t := v.(type) {
		case string:
			ids = append(ids, t)
		case float64:
			ids = append(ids, strconv.FormatFloat(t, 'f', -1, 64))
		default:
			ids = append(ids, fmt.Sprint(t))
		}
	}

	out := h.sendUC.Execute(r.Context(), ids)

	middleware.RecordBatch(out.Success)
	for _, res := range out.Results {
		middleware.RecordLeadOutcome(res.Status)
	}

	status := http.StatusOK
	if out.Error != "" {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, out)
}

func (h *OutreachHandler) HandleGrouped(w http.ResponseWriter, r *http.Request) {
	groups, _, err := h.groupedUC.Execute()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
