package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sha1n/mcp-actual-prompts-go/internal/app"
	"github.com/sha1n/mcp-actual-prompts-go/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// flagBindings maps command line flags to settings keys
var flagBindings = map[string]string{
	"transport":           "transport",
	"host":                "host",
	"port":                "port",
	"tls-cert":            "cert_file",
	"tls-key":             "key_file",
	"metadata":            "metadata",
	"auth-type":           "auth.type",
	"auth-basic-username": "auth.basic.username",
	"auth-basic-password": "auth.basic.password",
	"auth-api-key":        "auth.api_key",
	"auth-oidc-issuer":    "auth.oidc.issuer_url",
	"auth-oidc-client-id": "auth.oidc.client_id",
	"search-max-results":  "search.max_results",
	"log-level":           "log.level",
	"log-format":          "log.format",
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	var configFile string

	cmd := &cobra.Command{
		Use:          "mcp-actual-prompts",
		Short:        "MCP server serving budgeting prompts for Actual Budget",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, configFile)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "path to a settings file (yaml)")
	flags.String("transport", config.TransportStdio, "transport: stdio, sse or http")
	flags.String("host", "0.0.0.0", "listen host for network transports")
	flags.Int("port", 8080, "listen port for network transports")
	flags.String("tls-cert", "", "TLS certificate file")
	flags.String("tls-key", "", "TLS key file")
	flags.String("metadata", "", "server metadata file (yaml)")
	flags.String("auth-type", "none", "auth for network transports: none, basic, apikey or oidc")
	flags.String("auth-basic-username", "", "basic auth username")
	flags.String("auth-basic-password", "", "basic auth password")
	flags.String("auth-api-key", "", "API key accepted in X-API-Key or ?api_key=")
	flags.String("auth-oidc-issuer", "", "OIDC issuer URL")
	flags.String("auth-oidc-client-id", "", "OIDC client ID")
	flags.Int("search-max-results", 10, "maximum search-prompts results")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")

	for flag, key := range flagBindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", flag, err))
		}
	}

	return cmd
}

func run(ctx context.Context, v *viper.Viper, configFile string) error {
	settings, err := config.LoadSettings(v, configFile)
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(settings.Log, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	mcpServer, cleanup, err := app.CreateMCPServer(settings)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch settings.Transport {
	case config.TransportSSE:
		return StartSSEServer(ctx, mcpServer, settings)
	case config.TransportHTTP:
		return StartHTTPServer(ctx, mcpServer, settings)
	default:
		slog.Info("Serving over stdio")
		return server.ServeStdio(mcpServer)
	}
}
