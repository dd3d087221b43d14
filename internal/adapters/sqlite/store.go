package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/currentlyhq/currently/internal/app/ports"
	"github.com/currentlyhq/currently/internal/db"
	"github.com/currentlyhq/currently/internal/db/queries"
)

var (
	_ ports.SlackDirectory = (*Store)(nil)
	_ ports.PinStore       = (*Store)(nil)
)

// Store adapts the sqlc-backed database to the application ports.
type Store struct {
	database *db.Database
}

// NewStore constructs the sqlite-backed store adapter.
func NewStore(database *db.Database) *Store {
	return &Store{database: database}
}

// ResolveIntegrationBySlackUser resolves the oldest integration row for a Slack user id.
func (s *Store) ResolveIntegrationBySlackUser(ctx context.Context, slackUserID string) (ports.SlackIntegration, error) {
	row, err := s.database.GetSlackIntegrationBySlackUserID(ctx, slackUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.SlackIntegration{}, ports.ErrNotFound
		}
		return ports.SlackIntegration{}, err
	}
	return ports.SlackIntegration{
		ID:          row.ID,
		UserID:      row.UserID,
		SlackUserID: row.SlackUserID,
		SlackTeamID: row.SlackTeamID,
		BotToken:    row.BotToken,
	}, nil
}

// ListOrganizationsByUser returns organizations the account belongs to.
func (s *Store) ListOrganizationsByUser(ctx context.Context, userID int64) ([]ports.Organization, error) {
	rows, err := s.database.ListOrganizationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	orgs := make([]ports.Organization, 0, len(rows))
	for _, row := range rows {
		orgs = append(orgs, ports.Organization{ID: row.ID, Name: row.Name})
	}
	return orgs, nil
}

// ListActiveMemberProjects returns active projects the account is a direct member of.
func (s *Store) ListActiveMemberProjects(ctx context.Context, organizationID, userID int64) ([]ports.Project, error) {
	rows, err := s.database.ListActiveMemberProjects(ctx, organizationID, userID)
	if err != nil {
		return nil, err
	}
	projects := make([]ports.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProject(row))
	}
	return projects, nil
}

// GetProjectByID fetches a project.
func (s *Store) GetProjectByID(ctx context.Context, id int64) (ports.Project, error) {
	row, err := s.database.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.Project{}, ports.ErrNotFound
		}
		return ports.Project{}, err
	}
	return mapProject(row), nil
}

// IsProjectMember reports direct project membership.
func (s *Store) IsProjectMember(ctx context.Context, projectID, userID int64) (bool, error) {
	return s.database.IsProjectMember(ctx, projectID, userID)
}

// CreatePin persists a pinned message row.
func (s *Store) CreatePin(ctx context.Context, pin ports.Pin) (ports.Pin, error) {
	row, err := s.database.CreatePinnedMessage(ctx, queries.CreatePinnedMessageParams{
		PublicID:    pin.PublicID,
		ProjectID:   pin.ProjectID,
		UserID:      pin.UserID,
		ChannelID:   pin.ChannelID,
		ChannelName: pin.ChannelName,
		MessageTs:   pin.MessageTS,
		MessageText: pin.Text,
		AuthorID:    pin.AuthorID,
		AuthorName:  pin.AuthorName,
		Permalink:   pin.Permalink,
	})
	if err != nil {
		return ports.Pin{}, err
	}
	return mapPin(row), nil
}

// ListPinsByProject returns the most recent pins for a project.
func (s *Store) ListPinsByProject(ctx context.Context, projectID, limit int64) ([]ports.Pin, error) {
	rows, err := s.database.ListPinnedMessagesByProject(ctx, projectID, limit)
	if err != nil {
		return nil, err
	}
	pins := make([]ports.Pin, 0, len(rows))
	for _, row := range rows {
		pins = append(pins, mapPin(row))
	}
	return pins, nil
}

func mapProject(row queries.Project) ports.Project {
	return ports.Project{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Name:           row.Name,
		Description:    row.Description,
		Status:         row.Status,
	}
}

func mapPin(row queries.PinnedMessage) ports.Pin {
	return ports.Pin{
		PublicID:    row.PublicID,
		ProjectID:   row.ProjectID,
		UserID:      row.UserID,
		ChannelID:   row.ChannelID,
		ChannelName: row.ChannelName,
		MessageTS:   row.MessageTs,
		Text:        row.MessageText,
		AuthorID:    row.AuthorID,
		AuthorName:  row.AuthorName,
		Permalink:   row.Permalink,
		CreatedAt:   row.CreatedAt,
	}
}
