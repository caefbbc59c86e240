package providers

import (
	"context"
	"net/http"
	"portfolio/internal/models"
	"strings"
)

type Authenticator interface {
	Authenticate(token string) (*models.AdminUser, error)
}

type adminContextKey struct{}

// RequireAdmin rejects requests without a valid bearer token for the
// signed-in administrator.
func RequireAdmin(auth Authenticator, logger Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		user, err := auth.Authenticate(strings.TrimSpace(token))
		if err != nil {
			logger.Warnf(GetLogTypeByRequestType(r.Method), "Rejected admin request %s %s: %s", r.Method, r.URL.Path, err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), adminContextKey{}, user)))
	})
}

// AdminFromContext returns the administrator attached by RequireAdmin.
func AdminFromContext(ctx context.Context) (*models.AdminUser, bool) {
	user, ok := ctx.Value(adminContextKey{}).(*models.AdminUser)
	return user, ok
}
