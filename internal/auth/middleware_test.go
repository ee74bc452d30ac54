package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/sha1n/mcp-actual-prompts-go/internal/config"
)

func TestBasicAuth(t *testing.T) {
	settings := config.BasicAuthSettings{
		Username: "user",
		Password: "password",
	}
	middleware := basicAuthMiddleware(settings)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Test valid credentials
	req := httptest.NewRequest("GET", "/", nil)
	req.SetBasicAuth("user", "password")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	// Test invalid credentials
	req = httptest.NewRequest("GET", "/", nil)
	req.SetBasicAuth("user", "wrong")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}

	// Test missing credentials
	req = httptest.NewRequest("GET", "/", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestAPIKeyAuth(t *testing.T) {
	apiKey := "secret-key"
	middleware := apiKeyMiddleware(apiKey)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Test valid header
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-API-Key", "secret-key")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	// Test valid query param
	req = httptest.NewRequest("GET", "/?api_key=secret-key", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	// Test invalid key
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-API-Key", "wrong")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestNewMiddleware(t *testing.T) {
	// Test None
	mw, err := NewMiddleware(context.Background(), config.AuthSettings{Type: "none"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	// Test Basic
	mw, err = NewMiddleware(context.Background(), config.AuthSettings{
		Type: "basic",
		Basic: config.BasicAuthSettings{
			Username: "u",
			Password: "p",
		},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// Verify it requires auth
	req = httptest.NewRequest("GET", "/", nil)
	w = httptest.NewRecorder()
	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for basic auth without creds")
	}

	// Test Unknown
	_, err = NewMiddleware(context.Background(), config.AuthSettings{Type: "unknown"})
	if err == nil {
		t.Error("Expected error for unknown auth type")
	}
}

type fakeVerifier struct {
	valid string
}

func (f fakeVerifier) Verify(ctx context.Context, rawIDToken string) (*oidc.IDToken, error) {
	if rawIDToken != f.valid {
		return nil, errors.New("token rejected")
	}
	return &oidc.IDToken{}, nil
}

func TestTokenMiddleware(t *testing.T) {
	middleware := tokenMiddleware(fakeVerifier{valid: "good-token"})
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		header string
		query  string
		want   int
	}{
		{name: "Bearer header", header: "Bearer good-token", want: http.StatusOK},
		{name: "Query token", query: "?token=good-token", want: http.StatusOK},
		{name: "Invalid token", header: "Bearer bad-token", want: http.StatusUnauthorized},
		{name: "Missing token", want: http.StatusUnauthorized},
		{name: "Non-bearer header", header: "Basic dXNlcjpwYXNz", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/sse"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("Expected status %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestNewMiddleware_OIDCDiscoveryFailure(t *testing.T) {
	issuer := httptest.NewServer(http.NotFoundHandler())
	defer issuer.Close()

	_, err := NewMiddleware(context.Background(), config.AuthSettings{
		Type: "oidc",
		OIDC: config.OIDCSettings{
			IssuerURL: issuer.URL,
			ClientID:  "actual-prompts",
		},
	})
	if err == nil {
		t.Fatal("Expected error when issuer discovery fails")
	}
}
