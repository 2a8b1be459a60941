package octofer

import (
	"github.com/AbelHristodor/octofer/webhook"
)

// Typed registration helpers for the common GitHub event kinds. Each is
// shorthand for On with the corresponding kind string; see On for dispatch
// semantics.

// OnIssues registers a handler for issue events (opened, closed, edited,
// labeled, ...).
func (a *App) OnIssues(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventIssues, fn, extra)
}

// OnIssueComment registers a handler for comments created, edited, or
// deleted on issues and pull requests.
func (a *App) OnIssueComment(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventIssueComment, fn, extra)
}

// OnPullRequest registers a handler for pull request events (opened,
// synchronized, closed, merged, ...).
func (a *App) OnPullRequest(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventPullRequest, fn, extra)
}

// OnPullRequestReview registers a handler for submitted, edited, or
// dismissed pull request reviews.
func (a *App) OnPullRequestReview(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventPullRequestReview, fn, extra)
}

// OnPullRequestReviewComment registers a handler for comments on a pull
// request's diff.
func (a *App) OnPullRequestReviewComment(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventPullRequestReviewComment, fn, extra)
}

// OnPullRequestReviewThread registers a handler for review threads resolved
// or unresolved on a pull request.
func (a *App) OnPullRequestReviewThread(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventPullRequestReviewThread, fn, extra)
}

// OnPush registers a handler for pushes to a repository.
func (a *App) OnPush(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventPush, fn, extra)
}

// OnRelease registers a handler for release events.
func (a *App) OnRelease(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventRelease, fn, extra)
}

// OnCheckRun registers a handler for check run events.
func (a *App) OnCheckRun(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventCheckRun, fn, extra)
}

// OnCheckSuite registers a handler for check suite events.
func (a *App) OnCheckSuite(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventCheckSuite, fn, extra)
}

// OnInstallation registers a handler for the app being installed,
// uninstalled, or having its permissions changed.
func (a *App) OnInstallation(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventInstallation, fn, extra)
}

// OnInstallationRepositories registers a handler for repositories being
// added to or removed from an installation.
func (a *App) OnInstallationRepositories(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventInstallationRepositories, fn, extra)
}

// OnDeployment registers a handler for deployment creation events.
func (a *App) OnDeployment(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventDeployment, fn, extra)
}

// OnDeploymentStatus registers a handler for deployment status events.
func (a *App) OnDeploymentStatus(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventDeploymentStatus, fn, extra)
}

// OnRepository registers a handler for repository lifecycle events
// (created, renamed, archived, ...).
func (a *App) OnRepository(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventRepository, fn, extra)
}

// OnWorkflowRun registers a handler for workflow run events.
func (a *App) OnWorkflowRun(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventWorkflowRun, fn, extra)
}

// OnCreate registers a handler for branch or tag creation.
func (a *App) OnCreate(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventCreate, fn, extra)
}

// OnDelete registers a handler for branch or tag deletion.
func (a *App) OnDelete(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventDelete, fn, extra)
}

// OnFork registers a handler for a repository being forked.
func (a *App) OnFork(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventFork, fn, extra)
}

// OnCommitComment registers a handler for comments on commits.
func (a *App) OnCommitComment(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventCommitComment, fn, extra)
}

// OnGollum registers a handler for wiki page creation and updates.
func (a *App) OnGollum(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventGollum, fn, extra)
}

// OnPublic registers a handler for a repository being made public.
func (a *App) OnPublic(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventPublic, fn, extra)
}

// OnRepositoryDispatch registers a handler for repository_dispatch events
// triggered via the API.
func (a *App) OnRepositoryDispatch(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventRepositoryDispatch, fn, extra)
}

// OnRepositoryImport registers a handler for repository import events.
func (a *App) OnRepositoryImport(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventRepositoryImport, fn, extra)
}

// OnBranchProtectionRule registers a handler for branch protection rule
// changes.
func (a *App) OnBranchProtectionRule(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventBranchProtectionRule, fn, extra)
}

// OnProject registers a handler for classic project events.
func (a *App) OnProject(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventProject, fn, extra)
}

// OnProjectCard registers a handler for classic project card events.
func (a *App) OnProjectCard(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventProjectCard, fn, extra)
}

// OnProjectColumn registers a handler for classic project column events.
func (a *App) OnProjectColumn(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventProjectColumn, fn, extra)
}

// OnProjectsV2 registers a handler for Projects v2 events.
func (a *App) OnProjectsV2(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventProjectsV2, fn, extra)
}

// OnProjectsV2Item registers a handler for Projects v2 item events.
func (a *App) OnProjectsV2Item(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventProjectsV2Item, fn, extra)
}

// OnCodeScanningAlert registers a handler for code scanning alert events.
func (a *App) OnCodeScanningAlert(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventCodeScanningAlert, fn, extra)
}

// OnSecretScanningAlert registers a handler for secret scanning alert
// events.
func (a *App) OnSecretScanningAlert(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventSecretScanningAlert, fn, extra)
}

// OnSecretScanningAlertLocation registers a handler for secret scanning
// alert location events.
func (a *App) OnSecretScanningAlertLocation(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventSecretScanningAlertLocation, fn, extra)
}

// OnDependabotAlert registers a handler for Dependabot alert events.
func (a *App) OnDependabotAlert(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventDependabotAlert, fn, extra)
}

// OnRepositoryVulnerabilityAlert registers a handler for repository
// vulnerability alert events.
func (a *App) OnRepositoryVulnerabilityAlert(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventRepositoryVulnerabilityAlert, fn, extra)
}

// OnSecurityAdvisory registers a handler for security advisory events.
func (a *App) OnSecurityAdvisory(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventSecurityAdvisory, fn, extra)
}

// OnRepositoryAdvisory registers a handler for repository advisory events.
func (a *App) OnRepositoryAdvisory(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventRepositoryAdvisory, fn, extra)
}

// OnSecurityAndAnalysis registers a handler for changes to a repository's
// security and analysis settings.
func (a *App) OnSecurityAndAnalysis(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventSecurityAndAnalysis, fn, extra)
}

// OnDeployKey registers a handler for deploy key events.
func (a *App) OnDeployKey(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventDeployKey, fn, extra)
}

// OnDeploymentProtectionRule registers a handler for deployment protection
// rule events.
func (a *App) OnDeploymentProtectionRule(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventDeploymentProtectionRule, fn, extra)
}

// OnInstallationTarget registers a handler for the installation target
// being renamed.
func (a *App) OnInstallationTarget(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventInstallationTarget, fn, extra)
}

// OnGitHubAppAuthorization registers a handler for users revoking their
// authorization of the app.
func (a *App) OnGitHubAppAuthorization(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventGitHubAppAuthorization, fn, extra)
}

// OnPersonalAccessTokenRequest registers a handler for fine-grained
// personal access token requests.
func (a *App) OnPersonalAccessTokenRequest(fn webhook.HandlerFunc, extra interface{}) *App {
	return a.On(webhook.EventPersonalAccessTokenRequest, fn, extra)
}
