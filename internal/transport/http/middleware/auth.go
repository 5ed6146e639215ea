package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"hrapi/internal/requestctx"
)

// Auth extracts caller identity from the declared credential headers
// (X-API-Key, or a Bearer token verified against secret) and attaches it to
// the request context for logging. It never rejects a request: the API
// declares the scheme but does not enforce it.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := requestctx.Principal{APIKey: r.Header.Get("X-API-Key")}

			if subject, ok := bearerSubject(r.Header.Get("Authorization"), secret); ok {
				principal.Subject = subject
			}

			if principal.APIKey == "" && principal.Subject == "" {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(requestctx.WithPrincipal(r.Context(), principal)))
		})
	}
}

func bearerSubject(authHeader, secret string) (string, bool) {
	if authHeader == "" || secret == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(parts[1], &claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", false
	}
	return claims.Subject, claims.Subject != ""
}
