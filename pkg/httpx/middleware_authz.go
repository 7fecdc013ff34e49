package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyScope passes when the caller holds at least one of required.
func RequireAnyScope(required ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ := ClaimsFromContext(r.Context())
			for _, s := range required {
				if claims.HasScope(s) {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeScopeError(w, required)
		})
	}
}

// RequireAllScopes passes only when the caller holds every scope in required.
func RequireAllScopes(required ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ := ClaimsFromContext(r.Context())
			for _, s := range required {
				if !claims.HasScope(s) {
					writeScopeError(w, required)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750 insufficient_scope challenge.
func writeScopeError(w http.ResponseWriter, required []string) {
	scope := strings.Join(required, " ")
	w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="`+scope+`"`)
	WriteError(w, http.StatusForbidden, "insufficient_scope", "token lacks scope: "+scope, false)
}
