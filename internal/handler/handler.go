package handler

import (
	"net/http"

	"github.com/portfolio/backend/internal/repository"
)

// livenessText is the body served at GET /.
const livenessText = "Backend is running ✅"

type Handler struct {
	store       repository.StoreChecker
	frontendURL string
}

func New(store repository.StoreChecker, frontendURL string) *Handler {
	return &Handler{store: store, frontendURL: frontendURL}
}

// Root handles GET / with a plain-text liveness string.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(livenessText))
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		// Browsers reject credentials with a wildcard origin.
		if h.frontendURL != "*" {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
