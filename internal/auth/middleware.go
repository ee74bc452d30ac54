package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/sha1n/mcp-actual-prompts-go/internal/config"
)

// Middleware wraps an HTTP handler
type Middleware func(http.Handler) http.Handler

// NewMiddleware creates the authentication middleware selected by settings.Type
func NewMiddleware(ctx context.Context, settings config.AuthSettings) (Middleware, error) {
	switch settings.Type {
	case "none", "":
		return func(next http.Handler) http.Handler {
			return next
		}, nil
	case "basic":
		return basicAuthMiddleware(settings.Basic), nil
	case "apikey":
		return apiKeyMiddleware(settings.APIKey), nil
	case "oidc":
		return oidcMiddleware(ctx, settings.OIDC)
	default:
		return nil, fmt.Errorf("unknown auth type: %s", settings.Type)
	}
}

func secureEquals(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func reject(w http.ResponseWriter, r *http.Request, scheme, reason string) {
	slog.Warn("Rejected request", "scheme", scheme, "path", r.URL.Path, "reason", reason)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}

func basicAuthMiddleware(settings config.BasicAuthSettings) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || !secureEquals(user, settings.Username) || !secureEquals(pass, settings.Password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="actual-prompts"`)
				reject(w, r, "basic", "bad credentials")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func apiKeyMiddleware(apiKey string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")
			if key == "" {
				key = r.URL.Query().Get("api_key")
			}

			if !secureEquals(key, apiKey) {
				reject(w, r, "apikey", "bad key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken reads the Authorization header, falling back to the token query
// parameter for SSE clients that cannot set headers
func bearerToken(r *http.Request) string {
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return token
	}
	return r.URL.Query().Get("token")
}

// TokenVerifier verifies a raw ID token
type TokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*oidc.IDToken, error)
}

func oidcMiddleware(ctx context.Context, settings config.OIDCSettings) (Middleware, error) {
	provider, err := oidc.NewProvider(ctx, settings.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	return tokenMiddleware(provider.Verifier(&oidc.Config{
		ClientID: settings.ClientID,
	})), nil
}

func tokenMiddleware(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				reject(w, r, "oidc", "missing token")
				return
			}

			if _, err := verifier.Verify(r.Context(), token); err != nil {
				reject(w, r, "oidc", err.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
