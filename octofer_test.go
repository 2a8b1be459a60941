package octofer

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AbelHristodor/octofer/config"
	"github.com/AbelHristodor/octofer/webhook"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newSignedDelivery(
	t *testing.T,
	kind string,
	body []byte,
	secret string,
) *http.Request {
	req, err := http.NewRequest(
		http.MethodPost,
		"/webhook",
		bytes.NewReader(body),
	)
	require.NoError(t, err)
	req.Header.Set("X-GitHub-Event", kind)
	req.Header.Set("X-GitHub-Delivery", "test-delivery-id")
	req.Header.Set(
		config.DefaultSignatureHeader,
		webhook.Signature(body, []byte(secret)),
	)
	return req
}

func TestAppDispatchesSignedDelivery(t *testing.T) {
	app := NewDefault()

	var recordedInstallation int64
	var recordedExtra interface{}
	app.OnIssues(
		func(_ context.Context, c *webhook.Context, extra interface{}) error {
			recordedInstallation, _ = c.Installation()
			recordedExtra = extra
			return nil
		},
		"aux-data",
	)

	body := []byte(
		// nolint: lll
		`{"action":"opened","issue":{"number":42,"title":"Test"},"installation":{"id":555}}`,
	)
	rr := httptest.NewRecorder()
	app.Handler().ServeHTTP(
		rr,
		newSignedDelivery(t, webhook.EventIssues, body, config.DefaultWebhookSecret),
	)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, int64(555), recordedInstallation)
	require.Equal(t, "aux-data", recordedExtra)
}

func TestAppRejectsUnsignedDelivery(t *testing.T) {
	app := NewDefault()

	invoked := false
	app.OnIssues(
		func(context.Context, *webhook.Context, interface{}) error {
			invoked = true
			return nil
		},
		nil,
	)

	body := []byte(`{"action":"opened","installation":{"id":555}}`)
	req, err := http.NewRequest(
		http.MethodPost,
		"/webhook",
		bytes.NewReader(body),
	)
	require.NoError(t, err)
	req.Header.Set("X-GitHub-Event", webhook.EventIssues)

	rr := httptest.NewRecorder()
	app.Handler().ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.False(t, invoked)
}

func TestAppRejectsBadSignature(t *testing.T) {
	app := NewDefault()

	invoked := false
	app.OnIssues(
		func(context.Context, *webhook.Context, interface{}) error {
			invoked = true
			return nil
		},
		nil,
	)

	body := []byte(`{"action":"opened"}`)
	rr := httptest.NewRecorder()
	app.Handler().ServeHTTP(
		rr,
		newSignedDelivery(t, webhook.EventIssues, body, "wrong secret"),
	)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.False(t, invoked)
}

func TestAppFailsFast(t *testing.T) {
	app := NewDefault()

	var invocations []string
	app.OnPush(
		func(context.Context, *webhook.Context, interface{}) error {
			invocations = append(invocations, "first")
			return errors.New("something went wrong")
		},
		nil,
	).OnPush(
		func(context.Context, *webhook.Context, interface{}) error {
			invocations = append(invocations, "second")
			return nil
		},
		nil,
	)

	body := []byte(`{"ref":"refs/heads/main"}`)
	rr := httptest.NewRecorder()
	app.Handler().ServeHTTP(
		rr,
		newSignedDelivery(t, webhook.EventPush, body, config.DefaultWebhookSecret),
	)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, []string{"first"}, invocations)
}

func TestAppHealthEndpoint(t *testing.T) {
	app := NewDefault()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	app.Handler().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestNewRequiresCredential(t *testing.T) {
	app, err := New(config.Default())
	require.Nil(t, app)
	require.ErrorIs(t, err, config.ErrMissingCredential)
}
