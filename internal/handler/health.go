package handler

import (
	"log/slog"
	"net/http"
)

// storeHealth is the body of GET /api/health. Error is set only when the
// directory holding the messages file cannot be used.
type storeHealth struct {
	Status string `json:"status"`
	Store  string `json:"store"`
	Error  string `json:"error,omitempty"`
}

// Health reports whether the messages file can be created or rewritten.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	body := storeHealth{Status: "ok", Store: h.store.Path()}
	status := http.StatusOK

	if err := h.store.Ping(r.Context()); err != nil {
		slog.Warn("store health check failed", "path", body.Store, "error", err)
		body.Status = "unhealthy"
		body.Error = err.Error()
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, body)
}
