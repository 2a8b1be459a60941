package github

import (
	"crypto/rsa"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// appAssertionLifetime is the validity window of a signed application
	// assertion. GitHub rejects assertions valid for more than ten
	// minutes.
	appAssertionLifetime = 5 * time.Minute
	// appAssertionBackdate is how far the issued-at claim is backdated to
	// absorb clock skew between this host and GitHub.
	appAssertionBackdate = 30 * time.Second
)

// appTransport is an http.RoundTripper that authenticates every request as
// the GitHub App itself by minting and attaching a fresh, short-lived RS256
// JWT. Minting per request sidesteps assertion expiry entirely: no request
// can ever carry a stale token.
type appTransport struct {
	base  http.RoundTripper
	appID int64
	key   *rsa.PrivateKey
	now   func() time.Time
}

func (a *appTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	assertion, err := a.assertion()
	if err != nil {
		return nil, err
	}
	// Per the http.RoundTripper contract the request must not be mutated,
	// so attach the assertion to a clone.
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+assertion)
	return a.base.RoundTrip(req)
}

// assertion mints a signed JWT identifying the GitHub App.
//
// See https://docs.github.com/en/developers/apps/authenticating-with-github-apps
func (a *appTransport) assertion() (string, error) {
	now := a.now()
	return jwt.NewWithClaims(
		jwt.SigningMethodRS256,
		jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-appAssertionBackdate)),
			ExpiresAt: jwt.NewNumericDate(now.Add(appAssertionLifetime)),
			Issuer:    strconv.FormatInt(a.appID, 10),
		},
	).SignedString(a.key)
}
