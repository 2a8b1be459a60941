package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/AbelHristodor/octofer/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-github/v39/github"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

var (
	// ErrInvalidPrivateKey indicates that the GitHub App credential does
	// not hold a PEM-encoded RSA private key.
	ErrInvalidPrivateKey = errors.New("private key is not valid RSA PEM")
	// ErrInstallationNotFound indicates that the GitHub App has no
	// installation with the requested ID.
	ErrInstallationNotFound = errors.New("installation not found")
)

// Client is a GitHub API client that authenticates as a GitHub App. It owns
// an app-level client used to list installations and mint installation
// tokens, and a cache of clients scoped to individual installations. The
// cache is safe for use from concurrent goroutines.
type Client struct {
	appID     int64
	appClient *github.Client
	baseURL   string
	userAgent string
	transport http.RoundTripper

	mu            sync.RWMutex
	installations map[int64]*cachedInstallationClient

	// now is replaceable so tests can steer token expiry.
	now func() time.Time
}

type clientOptions struct {
	baseURL   string
	userAgent string
	transport http.RoundTripper
}

// ClientOption configures properties of a Client.
type ClientOption func(*clientOptions)

// WithBaseURL points all clients at an alternate GitHub API base URL, such
// as a GitHub Enterprise host.
func WithBaseURL(baseURL string) ClientOption {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithUserAgent sets the User-Agent header on all clients.
func WithUserAgent(agent string) ClientOption {
	return func(o *clientOptions) {
		o.userAgent = agent
	}
}

// WithTransport sets the HTTP transport underlying all clients, beneath the
// authentication layer.
func WithTransport(transport http.RoundTripper) ClientOption {
	return func(o *clientOptions) {
		o.transport = transport
	}
}

// NewClient returns a Client for the GitHub App identified by the provided
// credential. It fails with ErrInvalidPrivateKey if the credential's key
// cannot be parsed as RSA PEM.
func NewClient(
	credential config.Credential,
	opts ...ClientOption,
) (*Client, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(credential.PrivateKey)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPrivateKey, err.Error())
	}
	options := clientOptions{
		transport: http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(&options)
	}
	c := &Client{
		appID:         credential.AppID,
		baseURL:       options.baseURL,
		userAgent:     options.userAgent,
		transport:     options.transport,
		installations: map[int64]*cachedInstallationClient{},
		now:           time.Now,
	}
	if c.appClient, err = c.newGitHubClient(
		&http.Client{
			Transport: &appTransport{
				base:  options.transport,
				appID: credential.AppID,
				key:   key,
				now:   time.Now,
			},
		},
	); err != nil {
		return nil, err
	}
	return c, nil
}

// AppClient returns the client authenticated as the GitHub App itself. It is
// suitable only for app-level operations such as listing installations.
func (c *Client) AppClient() *github.Client {
	return c.appClient
}

// ListInstallations returns every installation of the GitHub App.
func (c *Client) ListInstallations(
	ctx context.Context,
) ([]*github.Installation, error) {
	opts := &github.ListOptions{
		PerPage: 100,
	}
	var installations []*github.Installation
	for {
		page, res, err := c.appClient.Apps.ListInstallations(ctx, opts)
		if err != nil {
			return nil, errors.Wrap(err, "error listing app installations")
		}
		installations = append(installations, page...)
		if res.NextPage == 0 {
			break
		}
		opts.Page = res.NextPage
	}
	zerolog.Ctx(ctx).Debug().
		Int("count", len(installations)).
		Msg("Listed app installations")
	return installations, nil
}

// InstallationClient returns a client scoped to the specified installation.
// A cached client is returned when one exists and its token is not near
// expiry; otherwise a fresh token is minted and the cache entry replaced.
//
// Concurrent callers that both miss the cache mint independent tokens; both
// tokens are valid and the later insert wins. Lookups are never serialized
// behind a single writer.
func (c *Client) InstallationClient(
	ctx context.Context,
	installationID int64,
) (*github.Client, error) {
	if client := c.cachedClient(ctx, installationID); client != nil {
		return client, nil
	}
	return c.createInstallationClient(ctx, installationID)
}

// cachedClient returns the cached client for the specified installation, or
// nil when there is no usable entry.
func (c *Client) cachedClient(
	ctx context.Context,
	installationID int64,
) *github.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cached, ok := c.installations[installationID]
	if !ok {
		return nil
	}
	if cached.expired(c.now()) {
		zerolog.Ctx(ctx).Debug().
			Int64("installation_id", installationID).
			Msg("Cached installation token is near expiry")
		return nil
	}
	zerolog.Ctx(ctx).Debug().
		Int64("installation_id", installationID).
		Msg("Using cached installation client")
	return cached.client
}

func (c *Client) createInstallationClient(
	ctx context.Context,
	installationID int64,
) (*github.Client, error) {
	token, err := c.CreateInstallationToken(ctx, installationID, nil)
	if err != nil {
		return nil, err
	}
	client, err := c.tokenClient(ctx, token.GetToken())
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.installations[installationID] = &cachedInstallationClient{
		client:    client,
		token:     token,
		createdAt: c.now(),
	}
	c.mu.Unlock()
	zerolog.Ctx(ctx).Info().
		Int64("installation_id", installationID).
		Msg("Created new installation client")
	return client, nil
}

// CreateInstallationToken mints a new access token for the specified
// installation, optionally scoped to a subset of its repositories. It fails
// with ErrInstallationNotFound if the app has no such installation.
func (c *Client) CreateInstallationToken(
	ctx context.Context,
	installationID int64,
	repositories []string,
) (*github.InstallationToken, error) {
	installations, err := c.ListInstallations(ctx)
	if err != nil {
		return nil, err
	}
	var installation *github.Installation
	for _, i := range installations {
		if i.GetID() == installationID {
			installation = i
			break
		}
	}
	if installation == nil {
		return nil, errors.Wrapf(
			ErrInstallationNotFound,
			"installation %d",
			installationID,
		)
	}
	opts := &github.InstallationTokenOptions{}
	if len(repositories) > 0 {
		opts.Repositories = repositories
	}
	token, res, err := c.appClient.Apps.CreateInstallationToken(
		ctx,
		installation.GetID(),
		opts,
	)
	if err != nil {
		if res != nil {
			return nil, errors.Wrapf(
				err,
				"error creating token for installation %d (status %d)",
				installationID,
				res.StatusCode,
			)
		}
		return nil, errors.Wrapf(
			err,
			"error creating token for installation %d",
			installationID,
		)
	}
	zerolog.Ctx(ctx).Info().
		Int64("installation_id", installationID).
		Msg("Created installation token")
	return token, nil
}

// ListInstallationRepositories returns the repositories accessible to the
// specified installation.
func (c *Client) ListInstallationRepositories(
	ctx context.Context,
	installationID int64,
) ([]*github.Repository, error) {
	client, err := c.InstallationClient(ctx, installationID)
	if err != nil {
		return nil, err
	}
	opts := &github.ListOptions{
		PerPage: 100,
	}
	var repositories []*github.Repository
	for {
		page, res, err := client.Apps.ListRepos(ctx, opts)
		if err != nil {
			return nil, errors.Wrapf(
				err,
				"error listing repositories for installation %d",
				installationID,
			)
		}
		repositories = append(repositories, page.Repositories...)
		if res.NextPage == 0 {
			break
		}
		opts.Page = res.NextPage
	}
	return repositories, nil
}

// ClearInstallationCache removes the cached client for one installation. It
// is a no-op when no entry exists.
func (c *Client) ClearInstallationCache(installationID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.installations, installationID)
}

// ClearInstallationCaches removes every cached installation client, forcing
// fresh tokens on next use.
func (c *Client) ClearInstallationCaches() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.installations = map[int64]*cachedInstallationClient{}
}

// tokenClient returns a client authenticated with the provided installation
// token.
func (c *Client) tokenClient(
	ctx context.Context,
	token string,
) (*github.Client, error) {
	ctx = context.WithValue(
		ctx,
		oauth2.HTTPClient,
		&http.Client{Transport: c.transport},
	)
	return c.newGitHubClient(
		oauth2.NewClient(
			ctx,
			oauth2.StaticTokenSource(
				&oauth2.Token{
					TokenType:   "token", // This type indicates an installation token
					AccessToken: token,
				},
			),
		),
	)
}

// newGitHubClient builds a go-github client over the provided HTTP client,
// applying the configured base URL and user agent.
func (c *Client) newGitHubClient(
	httpClient *http.Client,
) (*github.Client, error) {
	client := github.NewClient(httpClient)
	if c.userAgent != "" {
		client.UserAgent = c.userAgent
	}
	if c.baseURL != "" {
		rawURL := c.baseURL
		if !strings.HasSuffix(rawURL, "/") {
			rawURL += "/"
		}
		baseURL, err := url.Parse(rawURL)
		if err != nil {
			return nil, errors.Wrapf(
				err,
				"error parsing API base URL %q",
				c.baseURL,
			)
		}
		client.BaseURL = baseURL
	}
	return client, nil
}
