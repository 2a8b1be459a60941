// Package octofer is a framework for building GitHub Apps in Go. It receives
// webhook deliveries over HTTP, verifies their signatures, classifies them,
// and dispatches them to registered handlers, which can call back into the
// GitHub API as the installation the event concerns. Installation tokens are
// minted on demand and cached until shortly before expiry.
package octofer

import (
	"context"
	"net/http"

	"github.com/AbelHristodor/octofer/config"
	ghlib "github.com/AbelHristodor/octofer/github"
	"github.com/AbelHristodor/octofer/webhook"
	"github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog"
)

// App is the main entry point for building a GitHub App. It ties together
// configuration, GitHub App authentication, handler registration, and the
// webhook server.
type App struct {
	config   config.Config
	github   *ghlib.Client
	registry *webhook.Registry
	server   *webhook.Server
	logger   zerolog.Logger
	metrics  metrics.Registry
}

// Option configures properties of an App.
type Option func(*App)

// WithLogger sets the logger the App and its webhook pipeline log through.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithMetrics sets the registry the App's webhook pipeline reports counts
// to.
func WithMetrics(registry metrics.Registry) Option {
	return func(a *App) {
		a.metrics = registry
	}
}

// New returns an App built from the provided configuration. The
// configuration must describe a loadable GitHub App credential; for a local
// app with no GitHub API access, use NewDefault instead.
func New(cfg config.Config, opts ...Option) (*App, error) {
	credential, err := cfg.GitHub.Credential()
	if err != nil {
		return nil, err
	}
	var clientOpts []ghlib.ClientOption
	if cfg.GitHub.APIBaseURL != "" {
		clientOpts = append(clientOpts, ghlib.WithBaseURL(cfg.GitHub.APIBaseURL))
	}
	client, err := ghlib.NewClient(credential, clientOpts...)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, client, opts...), nil
}

// NewDefault returns an App with development defaults: localhost-friendly
// server settings, the development webhook secret, and no GitHub App
// credential. Handlers registered on it run normally but have no GitHub API
// access.
func NewDefault(opts ...Option) *App {
	return NewUnauthenticated(config.Default(), opts...)
}

// NewUnauthenticated returns an App that honors the provided server and
// webhook configuration but carries no GitHub App credential. Handlers
// registered on it run normally but have no GitHub API access.
func NewUnauthenticated(cfg config.Config, opts ...Option) *App {
	return newApp(cfg, nil, opts...)
}

func newApp(cfg config.Config, client *ghlib.Client, opts ...Option) *App {
	a := &App{
		config:   cfg,
		github:   client,
		registry: webhook.NewRegistry(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.server = webhook.NewServer(webhook.ServerOptions{
		Logger:   a.logger,
		Registry: a.registry,
		GitHub:   a.github,
		Server:   cfg.Server,
		Webhook:  cfg.Webhook,
		Metrics:  a.metrics,
	})
	return a
}

// On registers a handler for the specified event kind. Multiple handlers may
// be registered for one kind; they are invoked in registration order, and
// the first failure skips those after it. The extra value is passed to the
// handler on every invocation.
func (a *App) On(event string, fn webhook.HandlerFunc, extra interface{}) *App {
	a.registry.Register(event, fn, extra)
	return a
}

// Handler returns the App's root HTTP handler, chiefly for embedding the
// webhook pipeline into an existing server or exercising it in tests. Most
// apps should call Start instead.
func (a *App) Handler() http.Handler {
	return a.server.Handler()
}

// Start serves webhook deliveries until the provided context is canceled.
func (a *App) Start(ctx context.Context) error {
	a.logger.Info().
		Int("port", a.config.Server.Port).
		Bool("tls", a.config.Server.TLSEnabled).
		Msg("Starting webhook server")
	return a.server.Run(ctx)
}

// GitHub returns the App's authenticating client, or nil when the App was
// built without a credential.
func (a *App) GitHub() *ghlib.Client {
	return a.github
}

// Registry returns the App's handler registry.
func (a *App) Registry() *webhook.Registry {
	return a.registry
}

// Config returns the App's configuration.
func (a *App) Config() config.Config {
	return a.config
}
