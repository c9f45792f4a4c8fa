package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/SergeyBogomolovv/furniture-resale/internal/auth"
	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/utils"
)

type TokenParser interface {
	Parse(token string) (auth.Principal, error)
}

// RoleLookup returns the role a user has now, which may differ from the one
// baked into an older token.
type RoleLookup interface {
	CurrentRole(ctx context.Context, userID string) (entities.UserRole, error)
}

// Authenticate attaches the bearer token's principal to the request context.
// Requests without a token pass through anonymously; a malformed or expired
// token is rejected. Dealer and admin tokens are checked against the stored
// role, so a demotion applies before the token expires.
func Authenticate(parser TokenParser, roles RoleLookup) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				utils.WriteError(w, "invalid authorization header", http.StatusUnauthorized)
				return
			}

			principal, err := parser.Parse(strings.TrimSpace(token))
			if err != nil {
				utils.WriteError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if principal.Role != entities.RoleCustomer {
				role, err := roles.CurrentRole(r.Context(), principal.UserID)
				if errors.Is(err, entities.ErrUserNotFound) {
					utils.WriteError(w, "invalid token", http.StatusUnauthorized)
					return
				}
				if err != nil {
					utils.WriteError(w, "internal server error", http.StatusInternalServerError)
					return
				}
				principal.Role = role
			}

			reportPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.FromContext(r.Context()); !ok {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects requests whose principal has none of the roles.
func RequireRole(roles ...entities.UserRole) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := auth.FromContext(r.Context())
			if !ok {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !slices.Contains(roles, p.Role) {
				utils.WriteError(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
