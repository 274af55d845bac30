package faq

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio-backend/internal/httpx"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/transport"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *Service
	log     *slog.Logger
}

func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// Routes mounts the resource on r. Collection-level PUT and DELETE take the
// id from the body and query string respectively.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/", h.Update)
	r.Delete("/", h.Delete)
	r.Get("/categories", h.Categories)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/view", h.View)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	values := r.URL.Query()
	page, limit := httpx.ParsePage(values, DefaultPage, DefaultLimit)
	q := Query{
		Search:   values.Get("search"),
		Category: values.Get("category"),
		Page:     page,
		Limit:    limit,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := h.service.Query(ctx, q)
	if err != nil {
		log.Error("faq list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to fetch faqs", nil)
		return
	}

	log.Info("faq list: ok", slog.Int("count", len(res.Items)), slog.Int64("total", res.Total))
	transport.WritePage(w, res.Items, transport.NewPagination(res.Page, res.Limit, res.Total))
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	counts, err := h.service.Categories(ctx)
	if err != nil {
		log.Error("faq categories: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to fetch categories", nil)
		return
	}

	log.Info("faq categories: ok", slog.Int("count", len(counts)))
	transport.WriteData(w, http.StatusOK, "", counts)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx, id)
	if err != nil {
		h.writeError(w, log, "faq get", id, err)
		return
	}

	transport.WriteData(w, http.StatusOK, "", item)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("faq create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		h.writeError(w, log, "faq create", "", err)
		return
	}

	log.Info("faq create: ok", slog.String("faq_id", item.ID), slog.String("category", item.Category))
	transport.WriteData(w, http.StatusCreated, "FAQ created successfully", item)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req UpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("faq update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		log.Warn("faq update: missing id")
		transport.WriteError(w, http.StatusBadRequest, "FAQ ID is required", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req.Patch)
	if err != nil {
		h.writeError(w, log, "faq update", id, err)
		return
	}

	log.Info("faq update: ok", slog.String("faq_id", id), slog.Bool("active", item.IsActive))
	transport.WriteData(w, http.StatusOK, "FAQ updated successfully", item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		log.Warn("faq delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "FAQ ID is required", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Delete(ctx, id)
	if err != nil {
		h.writeError(w, log, "faq delete", id, err)
		return
	}

	log.Info("faq delete: ok", slog.String("faq_id", id))
	transport.WriteData(w, http.StatusOK, "FAQ deleted successfully", item)
}

func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.IncrementViewCount(ctx, id)
	if err != nil {
		h.writeError(w, log, "faq view", id, err)
		return
	}

	transport.WriteData(w, http.StatusOK, "", item)
}

func (h *Handler) writeError(w http.ResponseWriter, log *slog.Logger, op, id string, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		log.Warn(op+": validation error", slog.Any("fields", verr.Fields))
		transport.WriteError(w, http.StatusBadRequest, "validation failed", verr.Fields)
	case errors.Is(err, ErrNotFound):
		log.Warn(op+": not found", slog.String("faq_id", id))
		transport.WriteError(w, http.StatusNotFound, "FAQ not found", nil)
	default:
		log.Error(op+": database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
	}
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
