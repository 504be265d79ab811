package csrf

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cmskit/pkg/logger"
)

// StoreResolver returns the session store for a request, or nil.
type StoreResolver func(r *http.Request) Store

// Middleware rejects unsafe requests whose token does not match the session
// with 403 Forbidden. Failures are logged at warn level when l is non-nil.
func (m *Manager) Middleware(resolve StoreResolver, l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var store Store
			if resolve != nil {
				store = resolve(r)
			}
			if err := m.Validate(r, store); err != nil {
				if l != nil {
					l.WarnContext(r.Context(), "csrf validation failed",
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						logger.Error(err),
					)
				}
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
