// internal/middleware/auth.go
package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/dangerclosesec/clubmap/internal/auth"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type reviewerContextKey struct{}

// Reviewer is the authenticated administrator behind a request.
type Reviewer struct {
	Username string
	Role     string
}

// ReviewerFromContext returns the reviewer set by RequireReviewer.
func ReviewerFromContext(ctx context.Context) (Reviewer, bool) {
	reviewer, ok := ctx.Value(reviewerContextKey{}).(Reviewer)
	return reviewer, ok
}

// WithReviewer returns a copy of ctx carrying reviewer.
func WithReviewer(ctx context.Context, reviewer Reviewer) context.Context {
	return context.WithValue(ctx, reviewerContextKey{}, reviewer)
}

// RequireReviewer creates a middleware that validates bearer tokens. When
// whitelist is non-empty the client IP must appear in it.
func RequireReviewer(tokenManager *auth.TokenManager, whitelist []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(whitelist))
	for _, ip := range whitelist {
		allowed[ip] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "Missing authorization header", "unauthorized")
				return
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header", "unauthorized")
				return
			}

			claims, err := tokenManager.Validate(token)
			if err != nil {
				slog.WarnContext(r.Context(), "token rejected", "error", err, "requestID", chimw.GetReqID(r.Context()))
				respondWithError(w, http.StatusUnauthorized, "Authentication failed or expired", "unauthorized")
				return
			}

			if len(allowed) > 0 {
				if _, ok := allowed[ClientIP(r)]; !ok {
					respondWithError(w, http.StatusForbidden, "Client IP is not allowed to use the admin API", "forbidden")
					return
				}
			}

			ctx := WithReviewer(r.Context(), Reviewer{Username: claims.Username, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIP returns the first X-Forwarded-For hop, falling back to the
// connection address.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
