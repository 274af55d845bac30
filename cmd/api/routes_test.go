package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-backend/internal/contact"
	"portfolio-backend/internal/faq"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/validation"
	"portfolio-backend/internal/welcome"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

// newTestApp wires handlers over repositories that are never reached; only
// routing is exercised.
func newTestApp() *app {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	val := validation.New()
	return &app{
		log:      logger,
		origins:  []string{"http://localhost:3000"},
		health:   &handlers.Health{Store: okPinger{}, Log: logger},
		faqs:     faq.NewHandler(faq.NewService(faq.NewRepository(nil), time.UTC), logger),
		projects: projects.NewHandler(projects.NewService(projects.NewRepository(nil), time.UTC), val, logger),
		welcome:  welcome.NewHandler(welcome.NewService(welcome.NewRepository(nil), time.UTC), val, logger),
		contact:  contact.NewHandler(contact.NewService(contact.NewRepository(nil), time.UTC, nil), val, logger),
	}
}

func TestRouterRegistersResources(t *testing.T) {
	router := newTestApp().router()

	routes := map[string]bool{}
	err := chi.Walk(router.(chi.Routes), func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes[method+" "+strings.TrimSuffix(route, "/")] = true
		return nil
	})
	require.NoError(t, err)

	for _, prefix := range []string{"/api", "/api/v1"} {
		for _, want := range []string{
			"GET " + prefix + "/faqs",
			"PUT " + prefix + "/faqs",
			"DELETE " + prefix + "/faqs",
			"GET " + prefix + "/faqs/categories",
			"POST " + prefix + "/faqs/{id}/view",
			"GET " + prefix + "/faqs/{id}",
			"PUT " + prefix + "/projects/{id}",
			"GET " + prefix + "/projects",
			"POST " + prefix + "/welcome-notes",
			"GET " + prefix + "/welcome-notes",
			"POST " + prefix + "/contact",
		} {
			assert.True(t, routes[want], want)
		}
		for _, gone := range []string{"/FQA", "/Project", "/WellcomeNote", "/ContactForm"} {
			for route := range routes {
				assert.NotContains(t, route, prefix+gone, route)
			}
		}
	}
	assert.True(t, routes["GET /healthz"])
}

func TestRouterServesHealthWithRequestID(t *testing.T) {
	router := newTestApp().router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouterRejectsBadRequestsBeforeStore(t *testing.T) {
	router := newTestApp().router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/faqs", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"fullName":""}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouterRejectsUnknownPathsAndFields(t *testing.T) {
	router := newTestApp().router()

	rec := httptest.NewRecorder()
	body := `{"fullname":"Ann","email":"a@b.co","nachricht":"hi","referralSource":["Friend"]}`
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ContactForm", strings.NewReader(body)))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/FQA/categories", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
