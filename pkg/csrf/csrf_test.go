package csrf_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmskit/pkg/csrf"
)

type memoryStore struct {
	mu   sync.Mutex
	data map[string]any
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]any)}
}

func (s *memoryStore) GetString(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key].(string)
	return v, ok
}

func (s *memoryStore) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

func TestManager_Token(t *testing.T) {
	t.Parallel()

	m := csrf.New()
	store := newMemoryStore()

	token, err := m.Token(store)
	require.NoError(t, err)
	assert.Len(t, token, 43) // 32 bytes, raw base64url

	again, err := m.Token(store)
	require.NoError(t, err)
	assert.Equal(t, token, again)

	rotated, err := m.Regenerate(store)
	require.NoError(t, err)
	assert.NotEqual(t, token, rotated)

	current, _ := store.GetString(csrf.DefaultSessionKey)
	assert.Equal(t, rotated, current)

	_, err = m.Token(nil)
	assert.ErrorIs(t, err, csrf.ErrNoStore)
	_, err = m.Regenerate(nil)
	assert.ErrorIs(t, err, csrf.ErrNoStore)
}

func TestManager_Input(t *testing.T) {
	t.Parallel()

	m := csrf.New(csrf.WithParamName("CMS_CSRF_TOKEN"), csrf.WithSessionKey("tok"), csrf.WithTokenLength(16))
	store := newMemoryStore()

	name, value, err := m.Input(store)
	require.NoError(t, err)
	assert.Equal(t, "CMS_CSRF_TOKEN", name)
	assert.Len(t, value, 22)

	stored, ok := store.GetString("tok")
	require.True(t, ok)
	assert.Equal(t, value, stored)
}

func TestManager_Lookup(t *testing.T) {
	t.Parallel()

	m := csrf.New()

	t.Run("header wins", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/?csrf_token=query", strings.NewReader("csrf_token=form"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.Header.Set(csrf.DefaultHeaderName, "header")
		assert.Equal(t, "header", m.Lookup(r))
	})

	t.Run("form body", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/?csrf_token=query", strings.NewReader("csrf_token=form"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.Equal(t, "form", m.Lookup(r))
	})

	t.Run("query string", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodDelete, "/entries/1?csrf_token=query", nil)
		assert.Equal(t, "query", m.Lookup(r))
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		assert.Empty(t, m.Lookup(r))
	})

	t.Run("custom header", func(t *testing.T) {
		t.Parallel()
		custom := csrf.New(csrf.WithHeaderName("X-Token"))
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set("X-Token", " value ")
		assert.Equal(t, "value", custom.Lookup(r))
		assert.Equal(t, "X-Token", custom.HeaderName())
		assert.Equal(t, csrf.DefaultParamName, custom.ParamName())
	})
}

func TestManager_Validate(t *testing.T) {
	t.Parallel()

	m := csrf.New()
	store := newMemoryStore()
	token, err := m.Token(store)
	require.NoError(t, err)

	post := func(value string) *http.Request {
		form := url.Values{}
		if value != "" {
			form.Set(csrf.DefaultParamName, value)
		}
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return r
	}

	assert.NoError(t, m.Validate(post(token), store))
	assert.ErrorIs(t, m.Validate(post(""), store), csrf.ErrTokenMissing)
	assert.ErrorIs(t, m.Validate(post("wrong"), store), csrf.ErrTokenMismatch)
	assert.ErrorIs(t, m.Validate(post(token), newMemoryStore()), csrf.ErrTokenMismatch)
	assert.ErrorIs(t, m.Validate(post(token), nil), csrf.ErrNoStore)

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace} {
		r := httptest.NewRequest(method, "/", nil)
		assert.NoError(t, m.Validate(r, nil), method)
	}
}

func TestManager_Middleware(t *testing.T) {
	t.Parallel()

	m := csrf.New()
	store := newMemoryStore()
	token, err := m.Token(store)
	require.NoError(t, err)

	var logs bytes.Buffer
	r := chi.NewRouter()
	r.Use(m.Middleware(func(*http.Request) csrf.Store { return store }, slog.New(slog.NewTextHandler(&logs, nil))))
	r.Get("/entries", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Post("/entries", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/entries", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/entries", nil)
	req.Header.Set(csrf.DefaultHeaderName, token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/entries", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, logs.String(), "csrf validation failed")
	assert.Contains(t, logs.String(), "csrf token missing")
}

func TestManager_MiddlewareWithoutResolver(t *testing.T) {
	t.Parallel()

	h := csrf.New().Middleware(nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
