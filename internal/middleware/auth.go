package middleware

import (
	"context"
	"net/http"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/models"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/web"
)

type ctxKey int

const userKey ctxKey = iota

// CallerResolver authenticates a request, returning the caller or an
// auth-class error.
type CallerResolver interface {
	ResolveCaller(r *http.Request) (*models.User, error)
}

// RequireAuth rejects unauthenticated requests and injects the resolved user
// into the request context for downstream handlers.
func RequireAuth(resolver CallerResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolver.ResolveCaller(r)
			if err != nil {
				web.Error(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the authenticated user placed in the context by
// RequireAuth.
func UserFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}
