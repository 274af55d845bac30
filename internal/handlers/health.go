package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/transport"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports whether the document store answers a ping.
type Health struct {
	Store Pinger
	Log   *slog.Logger
}

func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.Store.Ping(ctx); err != nil {
		log := h.Log
		if id := middleware.RequestIDFromContext(r.Context()); id != "" {
			log = log.With(slog.String("request_id", id))
		}
		log.Error("healthz: store unreachable", slog.String("error", err.Error()))
		transport.WriteJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"success": false,
			"status":  "unavailable",
		})
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"status":  "ok",
	})
}
