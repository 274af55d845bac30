package main

import (
	"log/slog"
	"net/http"
	"time"

	"portfolio-backend/internal/contact"
	"portfolio-backend/internal/faq"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/welcome"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type app struct {
	log            *slog.Logger
	origins        []string
	health         http.Handler
	faqs           *faq.Handler
	projects       *projects.Handler
	welcome        *welcome.Handler
	contact        *contact.Handler
	contactLimiter func(http.Handler) http.Handler
}

func (a *app) router() http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(a.log))
	r.Use(middleware.CORS(a.origins))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	r.Method(http.MethodGet, "/healthz", a.health)

	registerRoutes := func(api chi.Router) {
		api.Route("/faqs", a.faqs.Routes)
		api.Route("/projects", a.projects.Routes)
		api.Route("/welcome-notes", a.welcome.Routes)
		api.Route("/contact", a.contact.Routes(a.contactLimiter))
	}

	r.Route("/api", registerRoutes)
	r.Route("/api/v1", registerRoutes)
	return r
}
