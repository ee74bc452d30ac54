package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sha1n/mcp-actual-prompts-go/internal/auth"
	"github.com/sha1n/mcp-actual-prompts-go/internal/config"
)

const shutdownTimeout = 5 * time.Second

// StartSSEServer serves the MCP server over SSE until ctx is cancelled
func StartSSEServer(ctx context.Context, mcpServer *server.MCPServer, settings *config.Settings) error {
	sse := server.NewSSEServer(mcpServer)

	return listenAndServe(ctx, settings, map[string]http.Handler{
		"/sse":     sse.SSEHandler(),
		"/message": sse.MessageHandler(),
	})
}

// StartHTTPServer serves the MCP server over streamable HTTP until ctx is cancelled
func StartHTTPServer(ctx context.Context, mcpServer *server.MCPServer, settings *config.Settings) error {
	return listenAndServe(ctx, settings, map[string]http.Handler{
		"/mcp": server.NewStreamableHTTPServer(mcpServer),
	})
}

func listenAndServe(ctx context.Context, settings *config.Settings, routes map[string]http.Handler) error {
	authMiddleware, err := auth.NewMiddleware(ctx, settings.Auth)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	for path, handler := range routes {
		mux.Handle(path, authMiddleware(handler))
	}

	srv := &http.Server{
		Addr:              settings.Address(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "transport", settings.Transport, "addr", srv.Addr, "tls", settings.CertFile != "", "auth", settings.Auth.Type)
		if settings.CertFile != "" {
			errCh <- srv.ListenAndServeTLS(settings.CertFile, settings.KeyFile)
		} else {
			errCh <- srv.ListenAndServe()
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
