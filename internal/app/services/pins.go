package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/currentlyhq/currently/internal/app/ports"
)

// ErrProjectNotFound is returned when the pin targets an unknown project.
var ErrProjectNotFound = errors.New("project not found")

// ErrProjectNotActive is returned when the pin targets an archived project.
var ErrProjectNotActive = errors.New("project not active")

// ErrNotProjectMember is returned when the pinning account is not a direct project member.
var ErrNotProjectMember = errors.New("not a project member")

// ErrInvalidPinRequest is returned when required pin fields are missing.
var ErrInvalidPinRequest = errors.New("invalid pin request")

const (
	projectStatusActive = "active"
	defaultPinListLimit = 50
	maxPinListLimit     = 200
)

// PinService validates and persists pinned Slack messages.
type PinService struct {
	store ports.PinStore
}

// NewPinService constructs the pin service.
func NewPinService(store ports.PinStore) *PinService {
	return &PinService{store: store}
}

// CreatePin records a Slack message against a project. The target project
// must exist and be active, and the acting account must be a direct member.
func (s *PinService) CreatePin(ctx context.Context, req ports.PinRequest) (ports.Pin, error) {
	if req.ProjectID <= 0 || req.UserID <= 0 {
		return ports.Pin{}, fmt.Errorf("%w: project and user ids are required", ErrInvalidPinRequest)
	}
	if strings.TrimSpace(req.MessageTS) == "" {
		return ports.Pin{}, fmt.Errorf("%w: message timestamp is required", ErrInvalidPinRequest)
	}

	project, err := s.store.GetProjectByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ports.Pin{}, ErrProjectNotFound
		}
		return ports.Pin{}, fmt.Errorf("get project: %w", err)
	}
	if project.Status != projectStatusActive {
		return ports.Pin{}, ErrProjectNotActive
	}

	member, err := s.store.IsProjectMember(ctx, req.ProjectID, req.UserID)
	if err != nil {
		return ports.Pin{}, fmt.Errorf("check project membership: %w", err)
	}
	if !member {
		return ports.Pin{}, ErrNotProjectMember
	}

	pin := ports.Pin{
		PublicID:    uuid.NewString(),
		ProjectID:   req.ProjectID,
		UserID:      req.UserID,
		ChannelID:   req.ChannelID,
		ChannelName: req.ChannelName,
		MessageTS:   req.MessageTS,
		Text:        req.Text,
		AuthorID:    req.AuthorID,
		AuthorName:  req.AuthorName,
		Permalink:   req.Permalink,
	}

	stored, err := s.store.CreatePin(ctx, pin)
	if err != nil {
		return ports.Pin{}, fmt.Errorf("create pin: %w", err)
	}
	return stored, nil
}

// ListProjectPins returns the most recent pins for a project.
func (s *PinService) ListProjectPins(ctx context.Context, projectID, limit int64) ([]ports.Pin, error) {
	if projectID <= 0 {
		return nil, ErrProjectNotFound
	}
	if limit <= 0 {
		limit = defaultPinListLimit
	}
	if limit > maxPinListLimit {
		limit = maxPinListLimit
	}

	if _, err := s.store.GetProjectByID(ctx, projectID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return s.store.ListPinsByProject(ctx, projectID, limit)
}
