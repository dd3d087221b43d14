package db

import (
	"context"

	"github.com/currentlyhq/currently/internal/db/queries"
)

// CreateUser inserts a new user account.
func (c *Database) CreateUser(ctx context.Context, email, name string) (queries.User, error) {
	return c.Queries.CreateUser(ctx, queries.CreateUserParams{Email: email, Name: name})
}

// CreateOrganization inserts a new organization.
func (c *Database) CreateOrganization(ctx context.Context, name string) (queries.Organization, error) {
	return c.Queries.CreateOrganization(ctx, name)
}

// UpsertOrganizationMember adds or updates an organization membership.
func (c *Database) UpsertOrganizationMember(ctx context.Context, organizationID, userID int64, role string) error {
	return c.Queries.UpsertOrganizationMember(ctx, queries.UpsertOrganizationMemberParams{
		OrganizationID: organizationID,
		UserID:         userID,
		Role:           role,
	})
}

// ListOrganizationsByUser returns organizations the user belongs to.
func (c *Database) ListOrganizationsByUser(ctx context.Context, userID int64) ([]queries.Organization, error) {
	return c.Queries.ListOrganizationsByUser(ctx, userID)
}

// CreateProject inserts a project under an organization.
func (c *Database) CreateProject(ctx context.Context, organizationID int64, name, description, status string) (queries.Project, error) {
	return c.Queries.CreateProject(ctx, queries.CreateProjectParams{
		OrganizationID: organizationID,
		Name:           name,
		Description:    description,
		Status:         status,
	})
}

// UpsertProjectMember adds a direct project membership.
func (c *Database) UpsertProjectMember(ctx context.Context, projectID, userID int64) error {
	return c.Queries.UpsertProjectMember(ctx, queries.UpsertProjectMemberParams{ProjectID: projectID, UserID: userID})
}

// IsProjectMember reports whether the user is a direct member of the project.
func (c *Database) IsProjectMember(ctx context.Context, projectID, userID int64) (bool, error) {
	count, err := c.Queries.IsProjectMember(ctx, queries.IsProjectMemberParams{ProjectID: projectID, UserID: userID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListActiveMemberProjects returns active projects in the organization the user is a direct member of.
func (c *Database) ListActiveMemberProjects(ctx context.Context, organizationID, userID int64) ([]queries.Project, error) {
	return c.Queries.ListActiveMemberProjects(ctx, queries.ListActiveMemberProjectsParams{
		OrganizationID: organizationID,
		UserID:         userID,
	})
}

// CreateSlackIntegration links a Slack user to an internal account.
func (c *Database) CreateSlackIntegration(ctx context.Context, params queries.CreateSlackIntegrationParams) (queries.SlackIntegration, error) {
	return c.Queries.CreateSlackIntegration(ctx, params)
}

// GetSlackIntegrationBySlackUserID resolves the oldest integration row for a Slack user id.
func (c *Database) GetSlackIntegrationBySlackUserID(ctx context.Context, slackUserID string) (queries.SlackIntegration, error) {
	return c.Queries.GetSlackIntegrationBySlackUserID(ctx, slackUserID)
}

// CreatePinnedMessage persists a pinned Slack message against a project.
func (c *Database) CreatePinnedMessage(ctx context.Context, params queries.CreatePinnedMessageParams) (queries.PinnedMessage, error) {
	return c.Queries.CreatePinnedMessage(ctx, params)
}

// ListPinnedMessagesByProject returns the most recent pins for a project.
func (c *Database) ListPinnedMessagesByProject(ctx context.Context, projectID, limit int64) ([]queries.PinnedMessage, error) {
	return c.Queries.ListPinnedMessagesByProject(ctx, queries.ListPinnedMessagesByProjectParams{
		ProjectID: projectID,
		Limit:     limit,
	})
}
