package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/auth"
)

// ContactHandler handles contact form submission and the key-gated listing.
type ContactHandler struct {
	contactService service.ContactService
	matchKey       auth.KeyMatcher
}

// NewContactHandler creates a ContactHandler. matchKey decides whether the
// ?key= value on GET /api/messages is accepted.
func NewContactHandler(contactService service.ContactService, matchKey auth.KeyMatcher) *ContactHandler {
	return &ContactHandler{contactService: contactService, matchKey: matchKey}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// listResponse is the JSON response for GET /api/messages.
type listResponse struct {
	Success  bool               `json:"success"`
	Messages []model.Submission `json:"messages"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Submit handles POST /api/contact.
// name, email and message are all required.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Info("contact form body is not valid JSON", "error", err)
		writeJSON(w, http.StatusBadRequest, statusResponse{Message: "All fields are required."})
		return
	}

	slog.Info("new contact form submission",
		"name", req.Name,
		"email", req.Email,
		"message_length", len(req.Message),
	)

	_, err := h.contactService.Submit(r.Context(), req.Name, req.Email, req.Message)
	if errors.Is(err, service.ErrMissingField) {
		writeJSON(w, http.StatusBadRequest, statusResponse{Message: "All fields are required."})
		return
	}
	if err != nil {
		slog.Error("error handling contact form", "error", err)
		writeJSON(w, http.StatusInternalServerError, statusResponse{Message: "Server error saving message."})
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Success: true, Message: "Message saved successfully!"})
}

// List handles GET /api/messages?key=... and returns every stored submission.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	// key は一つだけ受け付ける
	keys := r.URL.Query()["key"]
	if len(keys) != 1 || !h.matchKey(keys[0]) {
		slog.Warn("admin key mismatch", "remote_addr", r.RemoteAddr)
		writeJSON(w, http.StatusUnauthorized, statusResponse{Message: "Unauthorized"})
		return
	}

	messages, err := h.contactService.List(r.Context())
	if err != nil {
		slog.Error("error reading messages", "error", err)
		writeJSON(w, http.StatusInternalServerError, statusResponse{Message: "Server error reading messages."})
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []model.Submission{}
	}

	slog.Info("returning messages", "count", len(messages))
	writeJSON(w, http.StatusOK, listResponse{Success: true, Messages: messages})
}
