package webhook

import (
	"bytes"
	"io"
	"net/http"

	libConfig "github.com/AbelHristodor/octofer/config"
	libHTTP "github.com/brigadecore/brigade-foundations/http"
	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog/hlog"
)

// SignatureVerificationFilterConfig encapsulates configuration for the
// signature verification based auth filter.
type SignatureVerificationFilterConfig struct {
	// Secret is the secret mutually agreed upon by GitHub and this app.
	Secret string
	// SignatureHeader is the name of the header carrying the HMAC-SHA256
	// signature of the payload. When empty,
	// config.DefaultSignatureHeader is used.
	SignatureHeader string
	// Metrics is the registry rejected-delivery counts are reported to.
	// When nil, the process-wide default registry is used.
	Metrics metrics.Registry
}

// signatureVerificationFilter is a component that implements the http.Filter
// interface and can conditionally allow or disallow a request based on the
// ability to verify the signature of the inbound request.
type signatureVerificationFilter struct {
	config SignatureVerificationFilterConfig
}

// NewSignatureVerificationFilter returns a component that implements the
// http.Filter interface and can conditionally allow or disallow a request
// based on the ability to verify the signature of the inbound request.
func NewSignatureVerificationFilter(
	config SignatureVerificationFilterConfig,
) libHTTP.Filter {
	if config.SignatureHeader == "" {
		config.SignatureHeader = libConfig.DefaultSignatureHeader
	}
	return &signatureVerificationFilter{
		config: config,
	}
}

func (s *signatureVerificationFilter) Decorate(
	handle http.HandlerFunc,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		signature := r.Header.Get(s.config.SignatureHeader)
		if signature == "" {
			s.reject(w, r, http.StatusBadRequest, errors.Errorf(
				"missing signature header %s",
				s.config.SignatureHeader,
			))
			return
		}

		// Without a request body there is nothing the signature could
		// cover.
		if r.Body == nil {
			s.reject(
				w,
				r,
				http.StatusBadRequest,
				errors.New("missing request body"),
			)
			return
		}

		// If we encounter an error reading the request body, we're just
		// going to roll with it. The incomplete body will naturally make
		// signature verification fail.
		bodyBytes, _ := io.ReadAll(r.Body) // nolint: errcheck
		r.Body.Close()                     // nolint: errcheck
		// Replace the request body because the original read was
		// destructive. Downstream stages must see the exact bytes the
		// signature covers.
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		if err := VerifySignature(
			signature,
			bodyBytes,
			[]byte(s.config.Secret),
		); err != nil {
			// A mismatch on a well-formed signature is an auth failure;
			// everything else is a malformed request.
			status := http.StatusBadRequest
			if errors.Is(err, ErrSignatureMismatch) {
				status = http.StatusUnauthorized
			}
			s.reject(w, r, status, err)
			return
		}

		handle(w, r)
	}
}

// reject terminates the request with the given status. The error is logged
// but never leaks to the sender.
func (s *signatureVerificationFilter) reject(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	err error,
) {
	hlog.FromRequest(r).Warn().
		Err(err).
		Msg("Rejected webhook delivery")
	counter(s.config.Metrics, MetricRejectedDeliveries).Inc(1)
	w.WriteHeader(status)
}
