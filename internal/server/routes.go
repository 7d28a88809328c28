// Package server wires handlers, middleware and storage into an http.Server.
package server

import (
	"net/http"

	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/web"
)

// RegisterRoutes builds the mux and wraps it with the shared middleware.
func RegisterRoutes(h *handler.Handler, contact *handler.ContactHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/contact", contact.Submit)
	mux.HandleFunc("GET /api/messages", contact.List)

	// Static portfolio
	mux.Handle("GET /site/", http.StripPrefix("/site", web.Handler()))

	return handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux)))
}
