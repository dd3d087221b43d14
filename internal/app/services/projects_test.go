package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/currentlyhq/currently/internal/app/ports"
)

type fakeDirectory struct {
	orgs        []ports.Organization
	orgsErr     error
	projects    map[int64][]ports.Project
	projectsErr error

	mu         sync.Mutex
	listedOrgs []int64
}

func (f *fakeDirectory) ResolveIntegrationBySlackUser(context.Context, string) (ports.SlackIntegration, error) {
	return ports.SlackIntegration{}, ports.ErrNotFound
}

func (f *fakeDirectory) ListOrganizationsByUser(context.Context, int64) ([]ports.Organization, error) {
	return f.orgs, f.orgsErr
}

func (f *fakeDirectory) ListActiveMemberProjects(_ context.Context, organizationID, _ int64) ([]ports.Project, error) {
	if f.projectsErr != nil {
		return nil, f.projectsErr
	}
	f.mu.Lock()
	f.listedOrgs = append(f.listedOrgs, organizationID)
	f.mu.Unlock()
	return f.projects[organizationID], nil
}

func TestListAccessibleProjectsReturnsErrNoOrganizations(t *testing.T) {
	svc := NewProjectDirectoryService(&fakeDirectory{})
	_, err := svc.ListAccessibleProjects(context.Background(), 42)
	if !errors.Is(err, ErrNoOrganizations) {
		t.Fatalf("expected ErrNoOrganizations, got %v", err)
	}
}

func TestListAccessibleProjectsMergesAndSortsAcrossOrganizations(t *testing.T) {
	store := &fakeDirectory{
		orgs: []ports.Organization{{ID: 1, Name: "acme"}, {ID: 2, Name: "beta"}},
		projects: map[int64][]ports.Project{
			1: {{ID: 5, OrganizationID: 1, Name: "Zeppelin", Status: "active"}, {ID: 3, OrganizationID: 1, Name: "Atlas", Status: "active"}},
			2: {{ID: 8, OrganizationID: 2, Name: "Atlas", Status: "active"}, {ID: 2, OrganizationID: 2, Name: "Billing", Status: "active"}},
		},
	}
	svc := NewProjectDirectoryService(store)

	projects, err := svc.ListAccessibleProjects(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 4 {
		t.Fatalf("expected 4 projects, got %d", len(projects))
	}
	// Same name in two orgs sorts by id.
	wantIDs := []int64{3, 8, 2, 5}
	for i, want := range wantIDs {
		if projects[i].ID != want {
			t.Fatalf("position %d: expected project %d, got %d (%q)", i, want, projects[i].ID, projects[i].Name)
		}
	}
}

func TestListAccessibleProjectsQueriesEveryOrganization(t *testing.T) {
	store := &fakeDirectory{
		orgs:     []ports.Organization{{ID: 1}, {ID: 2}, {ID: 3}},
		projects: map[int64][]ports.Project{2: {{ID: 9, OrganizationID: 2, Name: "Only", Status: "active"}}},
	}
	svc := NewProjectDirectoryService(store)

	projects, err := svc.ListAccessibleProjects(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 1 || projects[0].ID != 9 {
		t.Fatalf("unexpected projects: %+v", projects)
	}
	if len(store.listedOrgs) != 3 {
		t.Fatalf("expected a lookup per organization, got %v", store.listedOrgs)
	}
}

func TestListAccessibleProjectsPropagatesLookupErrors(t *testing.T) {
	lookupErr := errors.New("db gone")
	svc := NewProjectDirectoryService(&fakeDirectory{
		orgs:        []ports.Organization{{ID: 1}},
		projectsErr: lookupErr,
	})
	_, err := svc.ListAccessibleProjects(context.Background(), 42)
	if !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup error propagated, got %v", err)
	}

	orgErr := errors.New("org query failed")
	svc = NewProjectDirectoryService(&fakeDirectory{orgsErr: orgErr})
	_, err = svc.ListAccessibleProjects(context.Background(), 42)
	if !errors.Is(err, orgErr) {
		t.Fatalf("expected organization error propagated, got %v", err)
	}
}
