package ports

import (
	"context"
	"errors"
)

// ErrNotFound is returned by store lookups when no row matches.
var ErrNotFound = errors.New("not found")

// SlackDirectory defines the store lookups the Slack dispatcher needs.
// It is intentionally backend-agnostic: the sqlc-backed DB implements it
// today, but the hosted Postgres adapter can implement it later.
type SlackDirectory interface {
	ResolveIntegrationBySlackUser(ctx context.Context, slackUserID string) (SlackIntegration, error)
	ListOrganizationsByUser(ctx context.Context, userID int64) ([]Organization, error)
	ListActiveMemberProjects(ctx context.Context, organizationID, userID int64) ([]Project, error)
}

// PinStore defines storage operations for the pin persistence endpoint.
type PinStore interface {
	GetProjectByID(ctx context.Context, id int64) (Project, error)
	IsProjectMember(ctx context.Context, projectID, userID int64) (bool, error)
	CreatePin(ctx context.Context, pin Pin) (Pin, error)
	ListPinsByProject(ctx context.Context, projectID, limit int64) ([]Pin, error)
}

// Organization is an organization the resolved account belongs to.
type Organization struct {
	ID   int64
	Name string
}

// Project is a stream/project inside an organization.
type Project struct {
	ID             int64
	OrganizationID int64
	Name           string
	Description    string
	Status         string
}

// SlackIntegration maps a Slack user id to an internal account and holds
// the bot credential issued when the user connected their workspace.
type SlackIntegration struct {
	ID          int64
	UserID      int64
	SlackUserID string
	SlackTeamID string
	BotToken    string
}

// Pin is a Slack message recorded against a project.
type Pin struct {
	PublicID    string
	ProjectID   int64
	UserID      int64
	ChannelID   string
	ChannelName string
	MessageTS   string
	Text        string
	AuthorID    string
	AuthorName  string
	Permalink   string
	CreatedAt   string
}

// PinRequest is the payload the dispatcher forwards to the pin endpoint.
// UserID is always the internal account id, never the Slack user id.
type PinRequest struct {
	ProjectID   int64  `json:"project_id"`
	UserID      int64  `json:"user_id"`
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	MessageTS   string `json:"message_ts"`
	Text        string `json:"text"`
	AuthorID    string `json:"author_id"`
	AuthorName  string `json:"author_name"`
	Permalink   string `json:"permalink"`
}
