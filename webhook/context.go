package webhook

import (
	"context"
	"encoding/json"

	ghlib "github.com/AbelHristodor/octofer/github"
	"github.com/google/go-github/v39/github"
	"github.com/pkg/errors"
)

// Context carries everything a handler may need to act on one event: the
// classified event itself and, when the app is configured with a credential,
// a handle to the authenticating GitHub client. A single Context is shared
// by every handler invoked for an event; it is immutable after construction.
type Context struct {
	event  *Event
	github *ghlib.Client
}

// NewContext returns a Context for the provided event. The client may be nil
// when the app runs without a GitHub App credential.
func NewContext(event *Event, client *ghlib.Client) *Context {
	return &Context{
		event:  event,
		github: client,
	}
}

// Event returns the classified event being dispatched.
func (c *Context) Event() *Event {
	return c.event
}

// Kind returns the event's type string, e.g. "issues".
func (c *Context) Kind() string {
	return c.event.Kind
}

// Payload returns the raw, signature-verified event payload.
func (c *Context) Payload() json.RawMessage {
	return c.event.Payload
}

// Installation returns the ID of the installation the event concerns, if
// any.
func (c *Context) Installation() (int64, bool) {
	return c.event.Installation()
}

// GitHub returns the app-authenticating client, or nil when the app runs
// without a credential.
func (c *Context) GitHub() *ghlib.Client {
	return c.github
}

// InstallationClient returns a GitHub client scoped to the installation the
// event concerns. It fails when the app has no credential or the event
// carries no installation.
func (c *Context) InstallationClient(
	ctx context.Context,
) (*github.Client, error) {
	if c.github == nil {
		return nil, errors.New("no GitHub App credential configured")
	}
	installationID, ok := c.Installation()
	if !ok {
		return nil, errors.Errorf(
			"%q event carries no installation",
			c.Kind(),
		)
	}
	return c.github.InstallationClient(ctx, installationID)
}
