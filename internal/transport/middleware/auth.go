package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/visaletter-backend/internal/auth"
	"github.com/heartmarshall/visaletter-backend/internal/domain"
	"github.com/heartmarshall/visaletter-backend/pkg/ctxutil"
)

type tokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type identityResolver interface {
	Resolve(ctx context.Context, claims *auth.Claims) (*domain.User, error)
}

// Auth verifies the bearer session token, resolves (and on first login
// creates) the user, and stores the user ID in the context. Requests without
// a bearer token pass through anonymously.
func Auth(verifier tokenVerifier, resolver identityResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				writeLoginRequired(w)
				return
			}

			user, err := resolver.Resolve(r.Context(), claims)
			if err != nil {
				if errors.Is(err, domain.ErrMissingRequiredClaim) {
					writeLoginRequired(w)
					return
				}
				logger.ErrorContext(r.Context(), "resolve identity",
					slog.String("subject", claims.Subject),
					slog.String("error", err.Error()),
				)
				writeJSONError(w, http.StatusInternalServerError, "internal server error", "")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects anonymous requests with 401 login_required.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeLoginRequired(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func writeLoginRequired(w http.ResponseWriter) {
	writeJSONError(w, http.StatusUnauthorized, "login required", "login_required")
}

func writeJSONError(w http.ResponseWriter, status int, message, code string) {
	body := map[string]string{"error": message}
	if code != "" {
		body["code"] = code
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}
