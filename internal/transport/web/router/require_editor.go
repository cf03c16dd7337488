package router

import (
	"net/http"

	"github.com/jbeshir/article-manager/internal/domain"
)

// requireEditorMiddleware gates mutation endpoints: the request must carry an
// authenticated user whose role is editor.
func requireEditorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := domain.UserFromContext(r.Context())
		if user == (domain.User{}) {
			logger := domain.LoggerFromContext(r.Context())
			logger.ErrorContext(r.Context(), "attempt to use endpoint requiring auth without user")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if !user.IsEditor() {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "non-editor attempted mutation", "user_id", user.ID, "role", user.Role)
			w.WriteHeader(http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
