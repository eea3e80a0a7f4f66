package listing

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kailas-cloud/campushub/internal/domain"
	"github.com/kailas-cloud/campushub/internal/domain/kind"
	domlisting "github.com/kailas-cloud/campushub/internal/domain/listing"
	"github.com/kailas-cloud/campushub/internal/domain/project"
	"github.com/kailas-cloud/campushub/internal/seed"
)

// --- Mocks ---

type mockProvider struct {
	items  []project.Project
	err    error
	called int
}

func (m *mockProvider) FetchRecords(_ context.Context) ([]project.Project, error) {
	m.called++
	return m.items, m.err
}

// lookupProvider also answers single-record lookups.
type lookupProvider struct {
	mockProvider
	getErr error
	lookups []string
}

func (m *lookupProvider) Get(_ context.Context, id string) (project.Project, error) {
	m.lookups = append(m.lookups, id)
	if m.getErr != nil {
		return project.Project{}, m.getErr
	}
	for _, p := range m.items {
		if p.ID() == id {
			return p, nil
		}
	}
	return project.Project{}, fmt.Errorf("projects %q: %w", id, domain.ErrNotFound)
}

type browseCall struct {
	kind     string
	filtered bool
	visible  int
}

type mockRecorder struct {
	calls []browseCall
}

func (m *mockRecorder) ObserveBrowse(k string, filtered bool, visible int) {
	m.calls = append(m.calls, browseCall{k, filtered, visible})
}

func newService(p *mockProvider) *Service[project.Project] {
	return New[project.Project](kind.Projects, p, project.Extractor)
}

func titles(ps []project.Project) []string {
	out := make([]string, len(ps))
	for i := range ps {
		out[i] = ps[i].Title()
	}
	return out
}

// --- Tests ---

func TestBrowse_EmptyStateReturnsAll(t *testing.T) {
	svc := newService(&mockProvider{items: seed.Projects()})

	page, err := svc.Browse(context.Background(), domlisting.State{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Count != 6 || page.Total != 6 || len(page.Items) != 6 {
		t.Errorf("count=%d total=%d len=%d, want 6/6/6", page.Count, page.Total, len(page.Items))
	}
	if diff := cmp.Diff(titles(seed.Projects()), titles(page.Items)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestBrowse_ToggleAI(t *testing.T) {
	rec := &mockRecorder{}
	svc := newService(&mockProvider{items: seed.Projects()}).WithRecorder(rec)

	state := domlisting.State{}.SetQuery("").ToggleTag("AI")
	page, err := svc.Browse(context.Background(), state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"AI-Powered Campus Navigator", "Robotics Lab Assistant"}
	if diff := cmp.Diff(want, titles(page.Items)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if page.Count != 2 || page.Total != 6 {
		t.Errorf("count=%d total=%d", page.Count, page.Total)
	}
	if !page.State.Equal(state) {
		t.Error("page should echo the state")
	}
	if diff := cmp.Diff([]browseCall{{"projects", true, 2}}, rec.calls, cmp.AllowUnexported(browseCall{})); diff != "" {
		t.Errorf("recorder mismatch (-want +got):\n%s", diff)
	}
}

func TestBrowse_NoMatch(t *testing.T) {
	svc := newService(&mockProvider{items: seed.Projects()})
	page, err := svc.Browse(context.Background(), domlisting.State{}.SetQuery("zzz-no-such-project"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Count != 0 || len(page.Items) != 0 {
		t.Errorf("count=%d, want 0", page.Count)
	}
	if page.Items == nil {
		t.Error("items should be empty, not nil")
	}
}

func TestBrowse_UnloadedCatalogIsEmpty(t *testing.T) {
	svc := newService(&mockProvider{err: domain.ErrCatalogEmpty})
	page, err := svc.Browse(context.Background(), domlisting.NewState("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 0 || page.Count != 0 || page.Items == nil {
		t.Errorf("page = %+v", page)
	}
}

func TestBrowse_ProviderError(t *testing.T) {
	boom := errors.New("boom")
	svc := newService(&mockProvider{err: boom})
	_, err := svc.Browse(context.Background(), domlisting.State{})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}

func TestGet(t *testing.T) {
	svc := newService(&mockProvider{items: seed.Projects()})

	p, err := svc.Get(context.Background(), "6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title() != "Robotics Lab Assistant" {
		t.Errorf("Title = %q", p.Title())
	}

	if _, err := svc.Get(context.Background(), "99"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGet_UnloadedCatalog(t *testing.T) {
	svc := newService(&mockProvider{err: domain.ErrCatalogEmpty})
	if _, err := svc.Get(context.Background(), "1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGet_UsesProviderLookup(t *testing.T) {
	p := &lookupProvider{mockProvider: mockProvider{items: seed.Projects()}}
	svc := New[project.Project](kind.Projects, p, project.Extractor)
	ctx := context.Background()

	got, err := svc.Get(ctx, "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID() != "2" {
		t.Errorf("ID = %q, want 2", got.ID())
	}
	if _, err := svc.Get(ctx, "99"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if diff := cmp.Diff([]string{"2", "99"}, p.lookups); diff != "" {
		t.Errorf("lookups mismatch (-want +got):\n%s", diff)
	}
	if p.called != 0 {
		t.Errorf("FetchRecords called %d times, want 0", p.called)
	}
}

func TestGet_ProviderLookupErrors(t *testing.T) {
	ctx := context.Background()

	unloaded := &lookupProvider{getErr: fmt.Errorf("projects: %w", domain.ErrCatalogEmpty)}
	svc := New[project.Project](kind.Projects, unloaded, project.Extractor)
	if _, err := svc.Get(ctx, "1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unloaded: err = %v, want ErrNotFound", err)
	}

	down := errors.New("connection refused")
	broken := &lookupProvider{getErr: down}
	svc = New[project.Project](kind.Projects, broken, project.Extractor)
	_, err := svc.Get(ctx, "1")
	if !errors.Is(err, down) || errors.Is(err, domain.ErrNotFound) {
		t.Errorf("store failure: err = %v, want wrapped connection error", err)
	}
}

func TestTags(t *testing.T) {
	svc := newService(&mockProvider{items: seed.Projects()}).WithPopular([]string{"AI", "IoT"})

	sum, err := svc.Tags(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"AI", "IoT"}, sum.Popular); diff != "" {
		t.Errorf("popular mismatch (-want +got):\n%s", diff)
	}
	if len(sum.All) == 0 {
		t.Fatal("expected tags")
	}
	if sum.All[0] != (TagCount{Tag: "AI", Count: 2}) {
		t.Errorf("first tag = %+v, want AI x2", sum.All[0])
	}
	counts := make(map[string]int, len(sum.All))
	for _, tc := range sum.All {
		counts[tc.Tag] = tc.Count
	}
	if counts["IoT"] != 2 || counts["Hardware"] != 2 || counts["Audio"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestTags_NoPopular(t *testing.T) {
	svc := newService(&mockProvider{items: nil})
	sum, err := svc.Tags(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Popular == nil || sum.All == nil {
		t.Errorf("summary should use empty slices: %+v", sum)
	}
}
