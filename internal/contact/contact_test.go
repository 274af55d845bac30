package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"portfolio-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	mu    sync.Mutex
	items []Submission
}

func (m *memoryRepo) Create(ctx context.Context, sub Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]Submission{sub}, m.items...)
	return nil
}

func (m *memoryRepo) matching(filter ListFilter) []Submission {
	out := make([]Submission, 0)
	for _, s := range m.items {
		if filter.FormType != "" && s.FormType != filter.FormType {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (m *memoryRepo) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.matching(filter)
	if offset >= int64(len(all)) {
		return []Submission{}, nil
	}
	end := offset + limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[offset:end], nil
}

func (m *memoryRepo) Count(ctx context.Context, filter ListFilter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.matching(filter))), nil
}

type fakeNotifier struct {
	sent chan Submission
	err  error
}

func (f *fakeNotifier) SendContactNotification(ctx context.Context, sub Submission) (string, error) {
	f.sent <- sub
	if f.err != nil {
		return "", f.err
	}
	return "msg-1", nil
}

func newRouter(repo Repository, notifier Notifier) http.Handler {
	svc := NewService(repo, time.UTC, notifier)
	h := NewHandler(svc, validation.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	r.Route("/contact", h.Routes(nil))
	return r
}

func TestServiceCreateDefaultsAndNormalizes(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, time.UTC, nil)

	sub, err := svc.Create(context.Background(), CreateRequest{
		FullName:        " Jane Doe ",
		Email:           " Jane@Example.com ",
		ReferralSources: []string{"Google", " ", "Google", "Friend"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", sub.FullName)
	assert.Equal(t, "jane@example.com", sub.Email)
	assert.Equal(t, FormTypeContact, sub.FormType)
	assert.Equal(t, []string{"Google", "Friend"}, sub.ReferralSources)
	assert.NoError(t, svc.Notify(context.Background(), sub))
}

func TestServiceListFiltersByFormType(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, time.UTC, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{FullName: "A", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{FullName: "B", Email: "b@example.com", FormType: "Project"})
	require.NoError(t, err)

	items, total, err := svc.List(ctx, ListFilter{FormType: " PROJECT "}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].FullName)

	items, total, err = svc.List(ctx, ListFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "B", items[0].FullName)
}

func TestHandlerCreateNotifiesOwner(t *testing.T) {
	notifier := &fakeNotifier{sent: make(chan Submission, 1), err: errors.New("brevo down")}
	router := newRouter(&memoryRepo{}, notifier)

	rec := httptest.NewRecorder()
	body := `{"fullName":"Jane","email":"jane@example.com","phone":"+1 (555) 010-9999","website":"https://jane.dev","formType":"project"}`
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	select {
	case sub := <-notifier.sent:
		assert.Equal(t, "Jane", sub.FullName)
		assert.Equal(t, FormTypeProject, sub.FormType)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestHandlerCreateValidation(t *testing.T) {
	router := newRouter(&memoryRepo{}, nil)

	rec := httptest.NewRecorder()
	body := `{"fullName":"","email":"nope","phone":"call me","website":"nowhere"}`
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body)))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var out struct {
		Success bool              `json:"success"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.False(t, out.Success)
	for _, field := range []string{"fullName", "email", "phone", "website"} {
		assert.Contains(t, out.Details, field)
	}
}

func TestHandlerCreateRejectsUnknownFields(t *testing.T) {
	router := newRouter(&memoryRepo{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"fullName":"A","email":"a@example.com","admin":true}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerListPaging(t *testing.T) {
	repo := &memoryRepo{}
	router := newRouter(repo, nil)
	svc := NewService(repo, time.UTC, nil)
	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Create(context.Background(), CreateRequest{FullName: name, Email: "x@example.com"})
		require.NoError(t, err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact?limit=2&offset=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Data  []Submission `json:"data"`
		Total int64        `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(3), out.Total)
	require.Len(t, out.Data, 2)
	assert.Equal(t, "B", out.Data[0].FullName)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact?offset=-1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
