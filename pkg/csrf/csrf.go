package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

// Defaults used by New.
const (
	DefaultParamName   = "csrf_token"
	DefaultHeaderName  = "X-CSRF-Token"
	DefaultSessionKey  = "__csrf"
	DefaultTokenLength = 32
)

// Store is the session value store the token lives in.
type Store interface {
	GetString(key string) (string, bool)
	Set(key string, value any)
}

// Option configures a Manager.
type Option func(*Manager)

// WithParamName sets the form field and query parameter name.
func WithParamName(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.paramName = name
		}
	}
}

// WithHeaderName sets the request header tokens are read from.
func WithHeaderName(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.headerName = name
		}
	}
}

// WithSessionKey sets the Store key the token is kept under.
func WithSessionKey(key string) Option {
	return func(m *Manager) {
		if key != "" {
			m.sessionKey = key
		}
	}
}

// WithTokenLength sets the number of random bytes per token. Values below 16
// are ignored.
func WithTokenLength(n int) Option {
	return func(m *Manager) {
		if n >= 16 {
			m.tokenLength = n
		}
	}
}

// Manager issues and verifies tokens. It holds no per-request state.
type Manager struct {
	paramName   string
	headerName  string
	sessionKey  string
	tokenLength int
}

// New creates a Manager.
func New(opts ...Option) *Manager {
	m := &Manager{
		paramName:   DefaultParamName,
		headerName:  DefaultHeaderName,
		sessionKey:  DefaultSessionKey,
		tokenLength: DefaultTokenLength,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ParamName returns the form field name tokens are submitted under.
func (m *Manager) ParamName() string { return m.paramName }

// HeaderName returns the request header tokens are submitted in.
func (m *Manager) HeaderName() string { return m.headerName }

// Token returns the session token, creating and storing one when absent.
func (m *Manager) Token(store Store) (string, error) {
	if store == nil {
		return "", ErrNoStore
	}
	if token, ok := store.GetString(m.sessionKey); ok && token != "" {
		return token, nil
	}
	token, err := m.generate()
	if err != nil {
		return "", err
	}
	store.Set(m.sessionKey, token)
	return token, nil
}

// Regenerate replaces the session token, typically after login.
func (m *Manager) Regenerate(store Store) (string, error) {
	if store == nil {
		return "", ErrNoStore
	}
	token, err := m.generate()
	if err != nil {
		return "", err
	}
	store.Set(m.sessionKey, token)
	return token, nil
}

// Input returns the hidden field name and value for a form.
func (m *Manager) Input(store Store) (name, value string, err error) {
	value, err = m.Token(store)
	return m.paramName, value, err
}

// Lookup returns the token submitted with r: header, then form value, then
// query string.
func (m *Manager) Lookup(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(m.headerName)); token != "" {
		return token
	}
	if token := r.PostFormValue(m.paramName); token != "" {
		return token
	}
	return r.URL.Query().Get(m.paramName)
}

// Validate checks the submitted token against the session token.
func (m *Manager) Validate(r *http.Request, store Store) error {
	if isSafeMethod(r.Method) {
		return nil
	}
	if store == nil {
		return ErrNoStore
	}

	submitted := m.Lookup(r)
	if submitted == "" {
		return ErrTokenMissing
	}
	expected, ok := store.GetString(m.sessionKey)
	if !ok || expected == "" {
		return ErrTokenMismatch
	}
	if subtle.ConstantTimeCompare([]byte(submitted), []byte(expected)) != 1 {
		return ErrTokenMismatch
	}
	return nil
}

func (m *Manager) generate() (string, error) {
	b := make([]byte, m.tokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate csrf token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}
