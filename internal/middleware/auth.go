package middleware

import (
	"net/http"
	"strings"

	"translate-api/internal/services"

	"github.com/gorilla/mux"
)

// AuthMiddleware verifies the bearer token against the identity provider and
// resolves (or auto-provisions) the matching account before the handler runs.
func AuthMiddleware(identityService services.IdentityService, accountService services.AccountService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractTokenFromHeader(r)
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			identity, err := identityService.Verify(r.Context(), tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			account, err := accountService.EnsureAccount(r.Context(), identity)
			if err != nil {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			ctx := services.WithAccountContext(r.Context(), account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractTokenFromHeader(r *http.Request) string {
	bearerToken := r.Header.Get("Authorization")
	parts := strings.Split(bearerToken, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
