package handlers

import (
	"net/http"
)

type StatusResolver interface {
	StatusFor(email string) string
}

type StatusHandler struct {
	lookup StatusResolver
}

func NewStatusHandler(lookup StatusResolver) *StatusHandler {
	return &StatusHandler{lookup: lookup}
}

func (h *StatusHandler) Handle(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "email query parameter is required",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"email":  email,
		"status": h.lookup.StatusFor(email),
	})
}
