package webhook

import (
	"bytes"
	"encoding/json"

	"github.com/google/go-github/v39/github"
	"github.com/pkg/errors"
)

// Event kind strings as GitHub delivers them in the X-GitHub-Event header.
// The set of kinds GitHub sends is open-ended; these constants cover the
// common ones, and kinds absent from this list flow through the framework
// unchanged.
const (
	EventBranchProtectionRule         = "branch_protection_rule"
	EventCheckRun                     = "check_run"
	EventCheckSuite                   = "check_suite"
	EventCodeScanningAlert            = "code_scanning_alert"
	EventCommitComment                = "commit_comment"
	EventCreate                       = "create"
	EventDelete                       = "delete"
	EventDependabotAlert              = "dependabot_alert"
	EventDeployKey                    = "deploy_key"
	EventDeployment                   = "deployment"
	EventDeploymentProtectionRule     = "deployment_protection_rule"
	EventDeploymentStatus             = "deployment_status"
	EventFork                         = "fork"
	EventGitHubAppAuthorization       = "github_app_authorization"
	EventGollum                       = "gollum"
	EventInstallation                 = "installation"
	EventInstallationRepositories     = "installation_repositories"
	EventInstallationTarget           = "installation_target"
	EventIssueComment                 = "issue_comment"
	EventIssues                       = "issues"
	EventPersonalAccessTokenRequest   = "personal_access_token_request"
	EventPing                         = "ping"
	EventProject                      = "project"
	EventProjectCard                  = "project_card"
	EventProjectColumn                = "project_column"
	EventProjectsV2                   = "projects_v2"
	EventProjectsV2Item               = "projects_v2_item"
	EventPublic                       = "public"
	EventPullRequest                  = "pull_request"
	EventPullRequestReview            = "pull_request_review"
	EventPullRequestReviewComment     = "pull_request_review_comment"
	EventPullRequestReviewThread      = "pull_request_review_thread"
	EventPush                         = "push"
	EventRelease                      = "release"
	EventRepository                   = "repository"
	EventRepositoryAdvisory           = "repository_advisory"
	EventRepositoryDispatch           = "repository_dispatch"
	EventRepositoryImport             = "repository_import"
	EventRepositoryVulnerabilityAlert = "repository_vulnerability_alert"
	EventSecretScanningAlert          = "secret_scanning_alert"
	EventSecretScanningAlertLocation  = "secret_scanning_alert_location"
	EventSecurityAdvisory             = "security_advisory"
	EventSecurityAndAnalysis          = "security_and_analysis"
	EventWorkflowRun                  = "workflow_run"
)

// KnownEventKinds returns the event kinds this package names constants for.
func KnownEventKinds() []string {
	return []string{
		EventBranchProtectionRule,
		EventCheckRun,
		EventCheckSuite,
		EventCodeScanningAlert,
		EventCommitComment,
		EventCreate,
		EventDelete,
		EventDependabotAlert,
		EventDeployKey,
		EventDeployment,
		EventDeploymentProtectionRule,
		EventDeploymentStatus,
		EventFork,
		EventGitHubAppAuthorization,
		EventGollum,
		EventInstallation,
		EventInstallationRepositories,
		EventInstallationTarget,
		EventIssueComment,
		EventIssues,
		EventPersonalAccessTokenRequest,
		EventPing,
		EventProject,
		EventProjectCard,
		EventProjectColumn,
		EventProjectsV2,
		EventProjectsV2Item,
		EventPublic,
		EventPullRequest,
		EventPullRequestReview,
		EventPullRequestReviewComment,
		EventPullRequestReviewThread,
		EventPush,
		EventRelease,
		EventRepository,
		EventRepositoryAdvisory,
		EventRepositoryDispatch,
		EventRepositoryImport,
		EventRepositoryVulnerabilityAlert,
		EventSecretScanningAlert,
		EventSecretScanningAlertLocation,
		EventSecurityAdvisory,
		EventSecurityAndAnalysis,
		EventWorkflowRun,
	}
}

var (
	// ErrMissingEventType indicates that the delivery did not identify
	// the kind of event it carries.
	ErrMissingEventType = errors.New("missing event type header")
	// ErrMalformedPayload indicates that the delivery's body is not a
	// JSON object.
	ErrMalformedPayload = errors.New("payload is not a JSON object")
)

// Event is one classified webhook delivery. It is immutable once parsed and
// lives only for the duration of a single dispatch.
type Event struct {
	// Kind is the event type string from the X-GitHub-Event header, e.g.
	// "issues" or "issue_comment". Kinds this package has no constant for
	// are preserved verbatim.
	Kind string
	// DeliveryID is the unique ID GitHub assigned to this delivery, when
	// present.
	DeliveryID string
	// InstallationID identifies the installation the event concerns, when
	// the payload carries one.
	InstallationID *int64
	// Payload is the raw, signature-verified body of the delivery.
	Payload json.RawMessage
}

// ParseEvent classifies a raw webhook body of the specified kind and
// delivery ID. The body must be a JSON object; the installation ID is
// extracted when the payload carries an installation field with an id.
// Unrecognized kinds are not an error, since GitHub introduces new event
// kinds over time.
func ParseEvent(kind, deliveryID string, body []byte) (*Event, error) {
	if kind == "" {
		return nil, ErrMissingEventType
	}
	if len(bytes.TrimSpace(body)) == 0 || bytes.TrimSpace(body)[0] != '{' {
		return nil, ErrMalformedPayload
	}
	var probe struct {
		Installation *struct {
			ID *int64 `json:"id"`
		} `json:"installation"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, errors.Wrap(ErrMalformedPayload, err.Error())
	}
	event := &Event{
		Kind:       kind,
		DeliveryID: deliveryID,
		Payload:    append(json.RawMessage(nil), body...),
	}
	if probe.Installation != nil {
		event.InstallationID = probe.Installation.ID
	}
	return event, nil
}

// Installation returns the installation ID the event concerns, if any.
func (e *Event) Installation() (int64, bool) {
	if e.InstallationID == nil {
		return 0, false
	}
	return *e.InstallationID, true
}

// ParsePayload parses the raw payload into the corresponding go-github event
// struct, e.g. *github.IssuesEvent for kind "issues". It fails for kinds
// go-github has no mapping for; such events remain fully usable through the
// raw Payload field.
func (e *Event) ParsePayload() (interface{}, error) {
	payload, err := github.ParseWebHook(e.Kind, e.Payload)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing %q payload", e.Kind)
	}
	return payload, nil
}
