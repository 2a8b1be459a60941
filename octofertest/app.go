package octofertest

import (
	"net/http/httptest"
	"testing"

	"github.com/AbelHristodor/octofer"
	"github.com/AbelHristodor/octofer/config"
)

// App wraps an octofer.App for tests. Deliveries built with this package
// are signed with the app's webhook secret and served through the app's
// real pipeline, so tests exercise signature verification, classification,
// and dispatch exactly as production traffic would.
type App struct {
	*octofer.App
	secret          string
	signatureHeader string
}

// NewApp returns a test App with development defaults and no GitHub App
// credential. Handlers registered on it run normally but have no GitHub
// API access.
func NewApp(opts ...octofer.Option) *App {
	return &App{
		App:             octofer.NewDefault(opts...),
		secret:          config.DefaultWebhookSecret,
		signatureHeader: config.DefaultSignatureHeader,
	}
}

// NewAppWithConfig returns a test App honoring the provided server and
// webhook configuration, still without a GitHub App credential.
func NewAppWithConfig(cfg config.Config, opts ...octofer.Option) *App {
	signatureHeader := cfg.Webhook.SignatureHeader
	if signatureHeader == "" {
		signatureHeader = config.DefaultSignatureHeader
	}
	return &App{
		App:             octofer.NewUnauthenticated(cfg, opts...),
		secret:          cfg.Webhook.Secret,
		signatureHeader: signatureHeader,
	}
}

// Deliver signs the delivery with the app's webhook secret and serves it
// through the app's pipeline, returning the recorded response.
func (a *App) Deliver(t *testing.T, d *Delivery) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Handler().ServeHTTP(rr, d.request(t, a.secret, a.signatureHeader))
	return rr
}

// DeliverUnsigned serves the delivery with no signature header, for
// exercising rejection paths.
func (a *App) DeliverUnsigned(t *testing.T, d *Delivery) *httptest.ResponseRecorder {
	req := d.request(t, a.secret, a.signatureHeader)
	req.Header.Del(a.signatureHeader)
	rr := httptest.NewRecorder()
	a.Handler().ServeHTTP(rr, req)
	return rr
}
