package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by the server
const EnvPrefix = "ACTUAL_PROMPTS"

// Transport names
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
	TransportHTTP  = "http"
)

// Settings holds process configuration
type Settings struct {
	Transport    string         `mapstructure:"transport"`
	Host         string         `mapstructure:"host"`
	Port         int            `mapstructure:"port"`
	CertFile     string         `mapstructure:"cert_file"`
	KeyFile      string         `mapstructure:"key_file"`
	MetadataPath string         `mapstructure:"metadata"`
	Auth         AuthSettings   `mapstructure:"auth"`
	Search       SearchSettings `mapstructure:"search"`
	Log          LogSettings    `mapstructure:"log"`
}

// AuthSettings configures authentication for the network transports
type AuthSettings struct {
	Type   string            `mapstructure:"type"`
	Basic  BasicAuthSettings `mapstructure:"basic"`
	APIKey string            `mapstructure:"api_key"`
	OIDC   OIDCSettings      `mapstructure:"oidc"`
}

// BasicAuthSettings holds basic auth credentials
type BasicAuthSettings struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// OIDCSettings identifies the token issuer and audience
type OIDCSettings struct {
	IssuerURL string `mapstructure:"issuer_url"`
	ClientID  string `mapstructure:"client_id"`
}

// SearchSettings configures the prompt search index
type SearchSettings struct {
	MaxResults int `mapstructure:"max_results"`
}

// LogSettings configures the process logger
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var defaults = map[string]any{
	"transport":            TransportStdio,
	"host":                 "0.0.0.0",
	"port":                 8080,
	"cert_file":            "",
	"key_file":             "",
	"metadata":             "",
	"auth.type":            "none",
	"auth.basic.username":  "",
	"auth.basic.password":  "",
	"auth.api_key":         "",
	"auth.oidc.issuer_url": "",
	"auth.oidc.client_id":  "",
	"search.max_results":   10,
	"log.level":            "info",
	"log.format":           "text",
}

// NewViper returns a viper instance with defaults and environment binding in place
func NewViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads the optional config file and resolves settings from v
func LoadSettings(v *viper.Viper, configFile string) (*Settings, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return &settings, nil
}

// Validate checks settings for consistency
func (s *Settings) Validate() error {
	switch s.Transport {
	case TransportStdio, TransportSSE, TransportHTTP:
	default:
		return fmt.Errorf("unknown transport: %s", s.Transport)
	}

	if s.Transport != TransportStdio && (s.Port < 0 || s.Port > 65535) {
		return fmt.Errorf("port out of range: %d", s.Port)
	}

	if (s.CertFile == "") != (s.KeyFile == "") {
		return errors.New("cert_file and key_file must be set together")
	}

	if s.Search.MaxResults < 1 {
		return fmt.Errorf("search.max_results must be positive, got %d", s.Search.MaxResults)
	}

	switch s.Auth.Type {
	case "", "none":
	case "basic":
		if s.Auth.Basic.Username == "" || s.Auth.Basic.Password == "" {
			return errors.New("basic auth requires username and password")
		}
	case "apikey":
		if s.Auth.APIKey == "" {
			return errors.New("apikey auth requires api_key")
		}
	case "oidc":
		if s.Auth.OIDC.IssuerURL == "" || s.Auth.OIDC.ClientID == "" {
			return errors.New("oidc auth requires issuer_url and client_id")
		}
	default:
		return fmt.Errorf("unknown auth type: %s", s.Auth.Type)
	}

	if _, err := parseLevel(s.Log.Level); err != nil {
		return err
	}
	switch s.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", s.Log.Format)
	}

	return nil
}

// Address returns the host:port listen address
func (s *Settings) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
