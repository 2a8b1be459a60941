package github

import (
	"time"

	"github.com/google/go-github/v39/github"
)

const (
	// defaultTokenTTL is the lifetime assumed for an installation token
	// whose expiry the API did not report. GitHub mints installation
	// tokens valid for one hour.
	defaultTokenTTL = time.Hour
	// expiryBuffer is the safety margin before expiry within which a
	// cached token is no longer used. It leaves in-flight API calls
	// enough time to complete before their token lapses.
	expiryBuffer = 5 * time.Minute
)

// cachedInstallationClient pairs a client scoped to one installation with the
// token backing it. Entries are immutable; refreshing an installation's
// client replaces its entry wholesale.
type cachedInstallationClient struct {
	client    *github.Client
	token     *github.InstallationToken
	createdAt time.Time
}

// expired returns true when the entry's token is within the safety buffer of
// its effective expiry. The effective expiry is the one reported by the API
// or, absent that, one hour past the moment the token was minted.
func (c *cachedInstallationClient) expired(now time.Time) bool {
	expiresAt := c.createdAt.Add(defaultTokenTTL)
	if c.token != nil && c.token.ExpiresAt != nil {
		expiresAt = *c.token.ExpiresAt
	}
	return !now.Add(expiryBuffer).Before(expiresAt)
}
