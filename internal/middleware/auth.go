package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/utils"
)

type TokenVerifier interface {
	Verify(token string) (entities.Caller, error)
}

type callerKey struct{}

func WithCaller(ctx context.Context, c entities.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

func CallerFrom(ctx context.Context) (entities.Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(entities.Caller)
	return c, ok
}

// Authenticate attaches the bearer token's caller to the request context.
// Requests without a token pass through anonymously; a malformed or
// expired token is rejected.
func Authenticate(v TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				utils.WriteError(w, "invalid authorization header", http.StatusUnauthorized)
				return
			}

			caller, err := v.Verify(token)
			if err != nil {
				utils.WriteError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

// RequireRole rejects anonymous requests with 401 and callers outside
// roles with 403. With no roles any signed-in caller is accepted.
func RequireRole(roles ...entities.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := CallerFrom(r.Context())
			if !ok {
				utils.WriteError(w, "authentication required", http.StatusUnauthorized)
				return
			}
			if len(roles) > 0 && !hasRole(caller.Role, roles) {
				utils.WriteError(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func hasRole(role entities.Role, roles []entities.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
