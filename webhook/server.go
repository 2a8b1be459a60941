package webhook

import (
	"context"
	"net/http"

	"github.com/AbelHristodor/octofer/config"
	ghlib "github.com/AbelHristodor/octofer/github"
	libHTTP "github.com/brigadecore/brigade-foundations/http"
	"github.com/gorilla/mux"
	"github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// ServerOptions encapsulates everything needed to assemble the webhook
// server.
type ServerOptions struct {
	// Logger is attached to every request's context; handlers retrieve an
	// event-scoped descendant of it via zerolog.Ctx.
	Logger zerolog.Logger
	// Registry holds the event handlers the server dispatches to.
	Registry *Registry
	// GitHub is the client handlers reach the GitHub API through. It may
	// be nil for apps that run without a GitHub App credential.
	GitHub *ghlib.Client
	// Server encapsulates configuration for the HTTP/S server.
	Server config.ServerConfig
	// Webhook encapsulates configuration for webhook verification and
	// dispatch.
	Webhook config.WebhookConfig
	// Metrics is the registry webhook counts are reported to. When nil,
	// the process-wide default registry is used.
	Metrics metrics.Registry
}

// Server receives webhook deliveries from GitHub over HTTP/S, verifies them,
// and dispatches them to registered handlers.
type Server struct {
	handler http.Handler
	server  libHTTP.Server
}

// NewRouter assembles the server's routes: POST /webhook, guarded by the
// signature verification filter, and GET /health. It is exposed separately
// from NewServer so tests can exercise the full pipeline without binding a
// listener.
func NewRouter(opts ServerOptions) *mux.Router {
	handler := NewHandler(opts.Registry, HandlerConfig{
		GitHub:         opts.GitHub,
		HandlerTimeout: opts.Webhook.HandlerTimeout,
		Metrics:        opts.Metrics,
	})
	signatureVerificationFilter := NewSignatureVerificationFilter(
		SignatureVerificationFilterConfig{
			Secret:          opts.Webhook.Secret,
			SignatureHeader: opts.Webhook.SignatureHeader,
			Metrics:         opts.Metrics,
		},
	)
	router := mux.NewRouter()
	router.StrictSlash(true)
	router.Handle(
		"/webhook",
		hlog.NewHandler(opts.Logger)(
			http.HandlerFunc(
				signatureVerificationFilter.Decorate(handler.ServeHTTP),
			),
		),
	).Methods(http.MethodPost)
	router.HandleFunc("/health", libHTTP.Healthz).Methods(http.MethodGet)
	return router
}

// NewServer returns a Server that dispatches webhook deliveries to the
// handlers in opts.Registry.
func NewServer(opts ServerOptions) *Server {
	router := NewRouter(opts)
	return &Server{
		handler: router,
		server: libHTTP.NewServer(
			router,
			&libHTTP.ServerConfig{
				Port:        opts.Server.Port,
				TLSEnabled:  opts.Server.TLSEnabled,
				TLSCertPath: opts.Server.TLSCertPath,
				TLSKeyPath:  opts.Server.TLSKeyPath,
			},
		),
	}
}

// Handler returns the Server's root HTTP handler, for embedding into an
// existing server or exercising the pipeline in tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until the provided context is canceled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	return s.server.ListenAndServe(ctx)
}
