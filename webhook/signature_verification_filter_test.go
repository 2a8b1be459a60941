package webhook

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSignatureVerificationFilter(t *testing.T) {
	filter := NewSignatureVerificationFilter(
		SignatureVerificationFilterConfig{
			Secret: "soylentgreenispeople",
		},
	)
	svf, ok := filter.(*signatureVerificationFilter)
	require.True(t, ok)
	require.Equal(t, "soylentgreenispeople", svf.config.Secret)
	require.Equal(t, "X-Hub-Signature-256", svf.config.SignatureHeader)
}

func TestSignatureVerificationFilter(t *testing.T) {
	const testSecret = "soylentgreenispeople"
	testBody := []byte(
		`{"action":"opened","issue":{"number":42},"installation":{"id":555}}`,
	)

	testCases := []struct {
		name       string
		setup      func() *http.Request
		assertions func(
			t *testing.T,
			rr *httptest.ResponseRecorder,
			handlerCalled bool,
		)
	}{
		{
			name: "signature header missing",
			setup: func() *http.Request {
				req, err := http.NewRequest(
					http.MethodPost,
					"/webhook",
					bytes.NewReader(testBody),
				)
				require.NoError(t, err)
				return req
			},
			assertions: func(
				t *testing.T,
				rr *httptest.ResponseRecorder,
				handlerCalled bool,
			) {
				require.Equal(t, http.StatusBadRequest, rr.Code)
				require.False(t, handlerCalled)
			},
		},
		{
			name: "signature malformed",
			setup: func() *http.Request {
				req, err := http.NewRequest(
					http.MethodPost,
					"/webhook",
					bytes.NewReader(testBody),
				)
				require.NoError(t, err)
				req.Header.Set("X-Hub-Signature-256", "sha256=not hex")
				return req
			},
			assertions: func(
				t *testing.T,
				rr *httptest.ResponseRecorder,
				handlerCalled bool,
			) {
				require.Equal(t, http.StatusBadRequest, rr.Code)
				require.False(t, handlerCalled)
			},
		},
		{
			name: "signature does not match",
			setup: func() *http.Request {
				req, err := http.NewRequest(
					http.MethodPost,
					"/webhook",
					bytes.NewReader(testBody),
				)
				require.NoError(t, err)
				req.Header.Set(
					"X-Hub-Signature-256",
					Signature(testBody, []byte("wrong secret")),
				)
				return req
			},
			assertions: func(
				t *testing.T,
				rr *httptest.ResponseRecorder,
				handlerCalled bool,
			) {
				require.Equal(t, http.StatusUnauthorized, rr.Code)
				require.False(t, handlerCalled)
			},
		},
		{
			name: "signature matches",
			setup: func() *http.Request {
				req, err := http.NewRequest(
					http.MethodPost,
					"/webhook",
					bytes.NewReader(testBody),
				)
				require.NoError(t, err)
				req.Header.Set(
					"X-Hub-Signature-256",
					Signature(testBody, []byte(testSecret)),
				)
				return req
			},
			assertions: func(
				t *testing.T,
				rr *httptest.ResponseRecorder,
				handlerCalled bool,
			) {
				require.Equal(t, http.StatusOK, rr.Code)
				require.True(t, handlerCalled)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			filter := NewSignatureVerificationFilter(
				SignatureVerificationFilterConfig{
					Secret: testSecret,
				},
			)
			handlerCalled := false
			rr := httptest.NewRecorder()
			filter.Decorate(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				// Downstream stages must see the exact signed bytes even
				// though the filter already consumed the body.
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				require.Equal(t, testBody, body)
				w.WriteHeader(http.StatusOK)
			})(rr, testCase.setup())
			testCase.assertions(t, rr, handlerCalled)
		})
	}
}
