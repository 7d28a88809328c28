package server

import (
	"net/http"
	"time"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/auth"
	"github.com/portfolio/backend/pkg/mailer"
)

// Deps are the collaborators New wires together. Tests swap them for doubles.
type Deps struct {
	Store  *repository.FileSubmissionRepository
	Mailer mailer.Client
}

// NewDeps builds the production collaborators from cfg.
func NewDeps(cfg config.Config) Deps {
	return Deps{
		Store:  repository.NewFileSubmissionRepository(cfg.MessagesFile),
		Mailer: mailer.NewSMTPClient(cfg.Mail),
	}
}

// NewHandler wires services and handlers and returns the routed handler.
func NewHandler(cfg config.Config, deps Deps) http.Handler {
	notifier := service.NewNotificationService(deps.Mailer)
	contactService := service.NewContactService(deps.Store, notifier)

	h := handler.New(deps.Store, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService, auth.NewKeyMatcher(cfg.AdminKeyMode, cfg.AdminKey))
	return RegisterRoutes(h, contactHandler)
}

// New declares the http.Server. WriteTimeout is generous because the
// notification email is sent before the response is written.
func New(cfg config.Config, deps Deps) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      NewHandler(cfg, deps),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}
}
