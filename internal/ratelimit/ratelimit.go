package ratelimit

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Store counts hits per key inside a fixed window.
type Store interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	count int64
	reset time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (m *MemoryStore) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	b, ok := m.buckets[key]
	if !ok || now.After(b.reset) {
		m.buckets[key] = &bucket{count: 1, reset: now.Add(window)}
		return 1, nil
	}

	b.count++
	return b.count, nil
}

type Limiter struct {
	store  Store
	name   string
	limit  int64
	window time.Duration
	log    *slog.Logger
}

// New returns a limiter whose counters are keyed by name and client IP only,
// so a route mounted under several paths shares one quota.
func New(store Store, name string, limit int, window time.Duration, log *slog.Logger) *Limiter {
	return &Limiter{
		store:  store,
		name:   name,
		limit:  int64(limit),
		window: window,
		log:    log,
	}
}

// Allow fails open when the store is unreachable.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	count, err := l.store.Hit(ctx, key, l.window)
	if err != nil {
		if l.log != nil {
			l.log.Warn("rate limit: store error", slog.String("error", err.Error()))
		}
		return true
	}
	return count <= l.limit
}

func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := "ratelimit:" + l.name + ":" + clientIP(r)
		if !l.Allow(r.Context(), key) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.FormatInt(int64(l.window/time.Second), 10))
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"success":false,"error":"rate limit exceeded"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		parts := strings.Split(xf, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
