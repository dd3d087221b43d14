package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/currentlyhq/currently/internal/app/ports"
)

// ErrNoOrganizations is returned when the account has no organization memberships.
var ErrNoOrganizations = errors.New("no organization memberships")

// maxConcurrentOrgLookups bounds the per-request fan-out so one dialog open
// cannot monopolize the connection pool.
const maxConcurrentOrgLookups = 4

// ProjectDirectoryService resolves which projects an account can pin into.
type ProjectDirectoryService struct {
	store ports.SlackDirectory
}

// NewProjectDirectoryService constructs the project directory service.
func NewProjectDirectoryService(store ports.SlackDirectory) *ProjectDirectoryService {
	return &ProjectDirectoryService{store: store}
}

// ListAccessibleProjects returns, across every organization the account
// belongs to, the active projects the account is a direct member of,
// sorted by name. The per-organization lookups run concurrently; merge
// order does not matter because the result is sorted before use.
func (s *ProjectDirectoryService) ListAccessibleProjects(ctx context.Context, userID int64) ([]ports.Project, error) {
	orgs, err := s.store.ListOrganizationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	if len(orgs) == 0 {
		return nil, ErrNoOrganizations
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOrgLookups)

	perOrg := make([][]ports.Project, len(orgs))
	for i, org := range orgs {
		g.Go(func() error {
			rows, err := s.store.ListActiveMemberProjects(gctx, org.ID, userID)
			if err != nil {
				return fmt.Errorf("list projects for organization %d: %w", org.ID, err)
			}
			perOrg[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var projects []ports.Project
	for _, rows := range perOrg {
		projects = append(projects, rows...)
	}
	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].Name == projects[j].Name {
			return projects[i].ID < projects[j].ID
		}
		return projects[i].Name < projects[j].Name
	})

	return projects, nil
}
