package octofer

import (
	"context"
	"testing"

	"github.com/AbelHristodor/octofer/webhook"
	"github.com/stretchr/testify/require"
)

func TestTypedRegistrationHelpers(t *testing.T) {
	testCases := []struct {
		kind     string
		register func(a *App, fn webhook.HandlerFunc)
	}{
		{webhook.EventIssues, func(a *App, fn webhook.HandlerFunc) { a.OnIssues(fn, nil) }},
		{webhook.EventIssueComment, func(a *App, fn webhook.HandlerFunc) { a.OnIssueComment(fn, nil) }},
		{webhook.EventPullRequest, func(a *App, fn webhook.HandlerFunc) { a.OnPullRequest(fn, nil) }},
		{webhook.EventPullRequestReview, func(a *App, fn webhook.HandlerFunc) { a.OnPullRequestReview(fn, nil) }},
		{webhook.EventPullRequestReviewComment, func(a *App, fn webhook.HandlerFunc) { a.OnPullRequestReviewComment(fn, nil) }},
		{webhook.EventPullRequestReviewThread, func(a *App, fn webhook.HandlerFunc) { a.OnPullRequestReviewThread(fn, nil) }},
		{webhook.EventPush, func(a *App, fn webhook.HandlerFunc) { a.OnPush(fn, nil) }},
		{webhook.EventRelease, func(a *App, fn webhook.HandlerFunc) { a.OnRelease(fn, nil) }},
		{webhook.EventCheckRun, func(a *App, fn webhook.HandlerFunc) { a.OnCheckRun(fn, nil) }},
		{webhook.EventCheckSuite, func(a *App, fn webhook.HandlerFunc) { a.OnCheckSuite(fn, nil) }},
		{webhook.EventInstallation, func(a *App, fn webhook.HandlerFunc) { a.OnInstallation(fn, nil) }},
		{webhook.EventInstallationRepositories, func(a *App, fn webhook.HandlerFunc) { a.OnInstallationRepositories(fn, nil) }},
		{webhook.EventInstallationTarget, func(a *App, fn webhook.HandlerFunc) { a.OnInstallationTarget(fn, nil) }},
		{webhook.EventGitHubAppAuthorization, func(a *App, fn webhook.HandlerFunc) { a.OnGitHubAppAuthorization(fn, nil) }},
		{webhook.EventPersonalAccessTokenRequest, func(a *App, fn webhook.HandlerFunc) { a.OnPersonalAccessTokenRequest(fn, nil) }},
		{webhook.EventDeployment, func(a *App, fn webhook.HandlerFunc) { a.OnDeployment(fn, nil) }},
		{webhook.EventDeploymentStatus, func(a *App, fn webhook.HandlerFunc) { a.OnDeploymentStatus(fn, nil) }},
		{webhook.EventDeployKey, func(a *App, fn webhook.HandlerFunc) { a.OnDeployKey(fn, nil) }},
		{webhook.EventDeploymentProtectionRule, func(a *App, fn webhook.HandlerFunc) { a.OnDeploymentProtectionRule(fn, nil) }},
		{webhook.EventRepository, func(a *App, fn webhook.HandlerFunc) { a.OnRepository(fn, nil) }},
		{webhook.EventRepositoryDispatch, func(a *App, fn webhook.HandlerFunc) { a.OnRepositoryDispatch(fn, nil) }},
		{webhook.EventRepositoryImport, func(a *App, fn webhook.HandlerFunc) { a.OnRepositoryImport(fn, nil) }},
		{webhook.EventBranchProtectionRule, func(a *App, fn webhook.HandlerFunc) { a.OnBranchProtectionRule(fn, nil) }},
		{webhook.EventWorkflowRun, func(a *App, fn webhook.HandlerFunc) { a.OnWorkflowRun(fn, nil) }},
		{webhook.EventCreate, func(a *App, fn webhook.HandlerFunc) { a.OnCreate(fn, nil) }},
		{webhook.EventDelete, func(a *App, fn webhook.HandlerFunc) { a.OnDelete(fn, nil) }},
		{webhook.EventFork, func(a *App, fn webhook.HandlerFunc) { a.OnFork(fn, nil) }},
		{webhook.EventCommitComment, func(a *App, fn webhook.HandlerFunc) { a.OnCommitComment(fn, nil) }},
		{webhook.EventGollum, func(a *App, fn webhook.HandlerFunc) { a.OnGollum(fn, nil) }},
		{webhook.EventPublic, func(a *App, fn webhook.HandlerFunc) { a.OnPublic(fn, nil) }},
		{webhook.EventProject, func(a *App, fn webhook.HandlerFunc) { a.OnProject(fn, nil) }},
		{webhook.EventProjectCard, func(a *App, fn webhook.HandlerFunc) { a.OnProjectCard(fn, nil) }},
		{webhook.EventProjectColumn, func(a *App, fn webhook.HandlerFunc) { a.OnProjectColumn(fn, nil) }},
		{webhook.EventProjectsV2, func(a *App, fn webhook.HandlerFunc) { a.OnProjectsV2(fn, nil) }},
		{webhook.EventProjectsV2Item, func(a *App, fn webhook.HandlerFunc) { a.OnProjectsV2Item(fn, nil) }},
		{webhook.EventCodeScanningAlert, func(a *App, fn webhook.HandlerFunc) { a.OnCodeScanningAlert(fn, nil) }},
		{webhook.EventSecretScanningAlert, func(a *App, fn webhook.HandlerFunc) { a.OnSecretScanningAlert(fn, nil) }},
		{webhook.EventSecretScanningAlertLocation, func(a *App, fn webhook.HandlerFunc) { a.OnSecretScanningAlertLocation(fn, nil) }},
		{webhook.EventDependabotAlert, func(a *App, fn webhook.HandlerFunc) { a.OnDependabotAlert(fn, nil) }},
		{webhook.EventRepositoryVulnerabilityAlert, func(a *App, fn webhook.HandlerFunc) { a.OnRepositoryVulnerabilityAlert(fn, nil) }},
		{webhook.EventSecurityAdvisory, func(a *App, fn webhook.HandlerFunc) { a.OnSecurityAdvisory(fn, nil) }},
		{webhook.EventRepositoryAdvisory, func(a *App, fn webhook.HandlerFunc) { a.OnRepositoryAdvisory(fn, nil) }},
		{webhook.EventSecurityAndAnalysis, func(a *App, fn webhook.HandlerFunc) { a.OnSecurityAndAnalysis(fn, nil) }},
	}

	app := NewDefault()
	fn := func(context.Context, *webhook.Context, interface{}) error {
		return nil
	}
	for _, testCase := range testCases {
		testCase.register(app, fn)
		require.Equal(
			t,
			1,
			app.Registry().Len(testCase.kind),
			"helper for %q registered under the wrong kind",
			testCase.kind,
		)
	}
}
