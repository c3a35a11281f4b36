// Package middleware provides net/http glue for feedgate-protected
// routes.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/feedgate/feedgate"
	"github.com/feedgate/feedgate/permission"
)

type userContextKey struct{}

// UserFromContext returns the authenticated user placed by [RequireUser].
func UserFromContext(ctx context.Context) (*feedgate.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*feedgate.User)
	return user, ok
}

// RequireUser rejects requests without a valid bearer access token and
// stores the resolved user on the request context.
func RequireUser(svc *feedgate.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if svc == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			user, err := svc.Authenticate(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermission builds on [RequireUser]: the authenticated user must
// also hold perm, otherwise the request fails with 403.
func RequirePermission(svc *feedgate.Service, perm permission.Permission) func(http.Handler) http.Handler {
	guard := RequireUser(svc)
	return func(next http.Handler) http.Handler {
		return guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || !user.Permissions.Has(perm) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}
