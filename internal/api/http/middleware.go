package http

import (
	"context"
	"net/http"
	"strings"

	"church-inventory-backend/internal/domain"
	"church-inventory-backend/internal/security"
)

type contextKey string

const userClaimsKey contextKey = "user_claims"

// AuthMiddleware rejects requests without a valid bearer token and puts
// the token claims on the request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, domain.Authf("authorization token is missing"))
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			writeError(w, domain.Authf("invalid authorization header format"))
			return
		}

		claims, err := m.tokens.Validate(parts[1])
		if err != nil {
			writeError(w, domain.Authf("invalid or expired token"))
			return
		}

		ctx := context.WithValue(r.Context(), userClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the authenticated user's token claims.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, error) {
	claims, ok := ctx.Value(userClaimsKey).(*security.UserClaims)
	if !ok {
		return nil, domain.Authf("authentication required")
	}
	return claims, nil
}
