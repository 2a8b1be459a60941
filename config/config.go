package config

import (
	"os"
	"time"

	libOS "github.com/AbelHristodor/octofer/internal/os"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// DefaultPort is the port the webhook server binds to when none is
	// configured.
	DefaultPort = 8000
	// DefaultSignatureHeader is the header GitHub uses to deliver the
	// HMAC-SHA256 signature of a webhook payload.
	DefaultSignatureHeader = "X-Hub-Signature-256"
	// DefaultWebhookSecret is the shared secret used when none is
	// configured. It is suitable for local development only.
	DefaultWebhookSecret = "development-secret"
)

// Config aggregates configuration for all components of an octofer app.
type Config struct {
	// GitHub encapsulates GitHub App configuration.
	GitHub GitHubConfig `yaml:"github"`
	// Server encapsulates configuration for the HTTP/S server.
	Server ServerConfig `yaml:"server"`
	// Webhook encapsulates configuration for webhook verification and
	// dispatch.
	Webhook WebhookConfig `yaml:"webhook"`
}

// GitHubConfig encapsulates the details of the GitHub App on whose behalf an
// octofer app authenticates.
type GitHubConfig struct {
	// AppID specifies the ID of the GitHub App.
	AppID int64 `yaml:"appID"`
	// PrivateKeyPath is the path to a PEM-encoded private key file for the
	// GitHub App. Mutually exclusive with PrivateKeyBase64.
	PrivateKeyPath string `yaml:"privateKeyPath"`
	// PrivateKeyBase64 is a base64-encoded copy of the PEM-encoded private
	// key for the GitHub App. Mutually exclusive with PrivateKeyPath.
	PrivateKeyBase64 string `yaml:"privateKeyBase64"`
	// APIBaseURL optionally overrides the base URL of the GitHub API, for
	// instance to target a GitHub Enterprise host. When empty, the public
	// GitHub API is used.
	APIBaseURL string `yaml:"apiBaseURL"`
}

// Credential loads the GitHub App credential described by this configuration.
func (g GitHubConfig) Credential() (Credential, error) {
	return LoadCredential(g.AppID, g.PrivateKeyPath, g.PrivateKeyBase64)
}

// ServerConfig encapsulates configuration for the HTTP/S server.
type ServerConfig struct {
	// Port specifies the port the server binds to.
	Port int `yaml:"port"`
	// TLSEnabled specifies whether the server serves HTTPS.
	TLSEnabled bool `yaml:"tlsEnabled"`
	// TLSCertPath is the path to the server's TLS certificate.
	TLSCertPath string `yaml:"tlsCertPath"`
	// TLSKeyPath is the path to the server's TLS key.
	TLSKeyPath string `yaml:"tlsKeyPath"`
}

// WebhookConfig encapsulates configuration for webhook verification and
// dispatch.
type WebhookConfig struct {
	// Secret is the secret mutually agreed upon by GitHub and this app. It
	// is used to validate the authenticity and integrity of every payload
	// this app receives.
	Secret string `yaml:"secret"`
	// SignatureHeader is the name of the header carrying the HMAC-SHA256
	// signature of the payload.
	SignatureHeader string `yaml:"signatureHeader"`
	// HandlerTimeout optionally bounds the total time spent invoking the
	// handlers registered for a single event. Zero disables the bound.
	HandlerTimeout time.Duration `yaml:"handlerTimeout"`
}

// Default returns a Config with values suitable for local development. The
// returned configuration carries no GitHub App credential, so an app built
// from it cannot call the GitHub API.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port: DefaultPort,
		},
		Webhook: WebhookConfig{
			Secret:          DefaultWebhookSecret,
			SignatureHeader: DefaultSignatureHeader,
		},
	}
}

// FromEnv populates a Config from environment variables. GITHUB_APP_ID and
// exactly one of GITHUB_PRIVATE_KEY_PATH or GITHUB_PRIVATE_KEY_BASE64 are
// required; all other variables fall back to development defaults.
func FromEnv() (Config, error) {
	config := Default()
	var err error
	if config.GitHub.AppID, err =
		libOS.GetInt64FromEnvVar("GITHUB_APP_ID", 0); err != nil {
		return config, err
	}
	if config.GitHub.AppID == 0 {
		return config, errors.New(
			"value not found for required environment variable GITHUB_APP_ID",
		)
	}
	config.GitHub.PrivateKeyPath = os.Getenv("GITHUB_PRIVATE_KEY_PATH")
	config.GitHub.PrivateKeyBase64 = os.Getenv("GITHUB_PRIVATE_KEY_BASE64")
	config.GitHub.APIBaseURL = os.Getenv("GITHUB_API_BASE_URL")
	// Fail fast on an unloadable credential rather than deferring the
	// error to client construction.
	if _, err = config.GitHub.Credential(); err != nil {
		return config, err
	}
	if config.Server.Port, err =
		libOS.GetIntFromEnvVar("OCTOFER_PORT", DefaultPort); err != nil {
		return config, err
	}
	if config.Server.TLSEnabled, err =
		libOS.GetBoolFromEnvVar("TLS_ENABLED", false); err != nil {
		return config, err
	}
	if config.Server.TLSEnabled {
		if config.Server.TLSCertPath, err =
			libOS.GetRequiredEnvVar("TLS_CERT_PATH"); err != nil {
			return config, err
		}
		if config.Server.TLSKeyPath, err =
			libOS.GetRequiredEnvVar("TLS_KEY_PATH"); err != nil {
			return config, err
		}
	}
	config.Webhook.Secret =
		libOS.GetEnvVar("GITHUB_WEBHOOK_SECRET", DefaultWebhookSecret)
	config.Webhook.SignatureHeader =
		libOS.GetEnvVar("GITHUB_WEBHOOK_HEADER", DefaultSignatureHeader)
	if config.Webhook.HandlerTimeout, err =
		libOS.GetDurationFromEnvVar("OCTOFER_HANDLER_TIMEOUT", 0); err != nil {
		return config, err
	}
	return config, nil
}

// FromFile populates a Config from a YAML file. Values absent from the file
// retain their development defaults. The private key itself is never stored
// in the file; the file points at it via path or base64 indirection, same as
// the environment.
func FromFile(path string) (Config, error) {
	config := Default()
	configBytes, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "error reading config file %s", path)
	}
	if err = yaml.Unmarshal(configBytes, &config); err != nil {
		return config, errors.Wrapf(err, "error parsing config file %s", path)
	}
	return config, nil
}
