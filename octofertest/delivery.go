// Package octofertest provides helpers for testing octofer apps: fluent
// builders for realistic webhook deliveries and an App harness that feeds
// them through the full verification and dispatch pipeline without binding
// a listener or contacting GitHub.
package octofertest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/AbelHristodor/octofer/config"
	"github.com/AbelHristodor/octofer/webhook"
	"github.com/stretchr/testify/require"
)

// DefaultInstallationID is the installation carried by built deliveries
// unless one is set explicitly or removed with WithoutInstallation.
const DefaultInstallationID int64 = 12345

// Delivery is a builder for one webhook delivery. Builders start from a
// minimal but realistic payload (sender, installation) and layer
// kind-specific fields on top; WithField is the escape hatch for anything
// the fluent methods do not cover.
type Delivery struct {
	kind       string
	deliveryID string
	fields     map[string]interface{}
}

// NewDelivery returns a builder for a delivery of the specified event kind.
func NewDelivery(kind string) *Delivery {
	return &Delivery{
		kind:       kind,
		deliveryID: "octofertest-delivery",
		fields: map[string]interface{}{
			"installation": map[string]interface{}{
				"id": DefaultInstallationID,
			},
			"sender": map[string]interface{}{
				"login": "octofertest",
				"id":    int64(1),
			},
		},
	}
}

// IssueOpened returns a builder for an issues event with action "opened".
func IssueOpened(repo string, number int) *Delivery {
	return issueDelivery("opened", repo, number)
}

// IssueClosed returns a builder for an issues event with action "closed".
func IssueClosed(repo string, number int) *Delivery {
	return issueDelivery("closed", repo, number)
}

func issueDelivery(action, repo string, number int) *Delivery {
	state := "open"
	if action == "closed" {
		state = "closed"
	}
	return NewDelivery(webhook.EventIssues).
		WithField("action", action).
		WithField("issue", map[string]interface{}{
			"number": number,
			"title":  fmt.Sprintf("Issue #%d", number),
			"state":  state,
		}).
		WithField("repository", repositoryField(repo))
}

// IssueCommentCreated returns a builder for an issue_comment event with
// action "created".
func IssueCommentCreated(repo string, number, commentID int) *Delivery {
	return NewDelivery(webhook.EventIssueComment).
		WithField("action", "created").
		WithField("comment", map[string]interface{}{
			"id":   commentID,
			"body": fmt.Sprintf("Comment #%d", commentID),
		}).
		WithField("issue", map[string]interface{}{
			"number": number,
		}).
		WithField("repository", repositoryField(repo))
}

// PullRequestOpened returns a builder for a pull_request event with action
// "opened".
func PullRequestOpened(repo string, number int) *Delivery {
	return NewDelivery(webhook.EventPullRequest).
		WithField("action", "opened").
		WithField("pull_request", map[string]interface{}{
			"number": number,
			"title":  fmt.Sprintf("PR #%d", number),
		}).
		WithField("repository", repositoryField(repo))
}

// Push returns a builder for a push event to the specified ref.
func Push(repo, ref string) *Delivery {
	return NewDelivery(webhook.EventPush).
		WithField("ref", ref).
		WithField("repository", repositoryField(repo))
}

func repositoryField(fullName string) map[string]interface{} {
	name := fullName
	if i := strings.LastIndex(fullName, "/"); i >= 0 {
		name = fullName[i+1:]
	}
	return map[string]interface{}{
		"full_name": fullName,
		"name":      name,
	}
}

// WithField sets a top-level payload field, replacing any previous value.
func (d *Delivery) WithField(key string, value interface{}) *Delivery {
	d.fields[key] = value
	return d
}

// WithTitle sets the title of the issue or pull request the delivery
// concerns. It is a no-op for deliveries carrying neither.
func (d *Delivery) WithTitle(title string) *Delivery {
	for _, key := range []string{"issue", "pull_request"} {
		if sub, ok := d.fields[key].(map[string]interface{}); ok {
			sub["title"] = title
		}
	}
	return d
}

// WithInstallation sets the installation the delivery concerns.
func (d *Delivery) WithInstallation(id int64) *Delivery {
	d.fields["installation"] = map[string]interface{}{
		"id": id,
	}
	return d
}

// WithoutInstallation removes the installation from the payload, for
// exercising events that carry none.
func (d *Delivery) WithoutInstallation() *Delivery {
	delete(d.fields, "installation")
	return d
}

// WithDeliveryID overrides the X-GitHub-Delivery header value.
func (d *Delivery) WithDeliveryID(id string) *Delivery {
	d.deliveryID = id
	return d
}

// Kind returns the delivery's event kind.
func (d *Delivery) Kind() string {
	return d.kind
}

// Body marshals the assembled payload.
func (d *Delivery) Body(t *testing.T) []byte {
	body, err := json.Marshal(d.fields)
	require.NoError(t, err)
	return body
}

// Request returns an HTTP request for the delivery, signed with the
// provided secret and carrying GitHub's event and delivery headers.
func (d *Delivery) Request(t *testing.T, secret string) *http.Request {
	return d.request(t, secret, config.DefaultSignatureHeader)
}

func (d *Delivery) request(
	t *testing.T,
	secret string,
	signatureHeader string,
) *http.Request {
	body := d.Body(t)
	req, err := http.NewRequest(
		http.MethodPost,
		"/webhook",
		bytes.NewReader(body),
	)
	require.NoError(t, err)
	req.Header.Set("X-GitHub-Event", d.kind)
	req.Header.Set("X-GitHub-Delivery", d.deliveryID)
	req.Header.Set(signatureHeader, webhook.Signature(body, []byte(secret)))
	return req
}

// Event classifies the delivery the way the dispatcher would, for tests
// that exercise a handler directly rather than through an App.
func (d *Delivery) Event(t *testing.T) *webhook.Event {
	event, err := webhook.ParseEvent(d.kind, d.deliveryID, d.Body(t))
	require.NoError(t, err)
	return event
}

// Context wraps the classified delivery in a handler context with no GitHub
// API access, for invoking a handler function directly.
func (d *Delivery) Context(t *testing.T) *webhook.Context {
	return webhook.NewContext(d.Event(t), nil)
}
