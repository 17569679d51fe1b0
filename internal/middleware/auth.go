package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"reliefhub/internal/api/respond"
	"reliefhub/internal/domain"
)

type principalKey struct{}

type TokenParser interface {
	ParseToken(raw string) (domain.Principal, error)
}

func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

// Authenticate requires "Authorization: Bearer <token>" and stores the caller in the context.
func Authenticate(parser TokenParser, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				logger.Warn("missing bearer token", slog.String("path", r.URL.Path))
				respond.Message(w, http.StatusUnauthorized, "access token required")
				return
			}

			p, err := parser.ParseToken(strings.TrimSpace(token))
			if err != nil {
				logger.Warn("invalid token", slog.String("path", r.URL.Path), slog.Any("error", err))
				respond.Message(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireRole must run after Authenticate.
func RequireRole(logger *slog.Logger, roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok {
				respond.Message(w, http.StatusUnauthorized, "access token required")
				return
			}
			if !p.HasRole(roles...) {
				logger.Warn("role denied",
					slog.String("user_id", p.UserID.String()),
					slog.String("role", string(p.Role)),
					slog.String("path", r.URL.Path),
				)
				respond.Message(w, http.StatusForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
