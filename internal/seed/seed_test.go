package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kailas-cloud/campushub/internal/db"
	"github.com/kailas-cloud/campushub/internal/domain/kind"
	"github.com/kailas-cloud/campushub/internal/domain/listing"
	"github.com/kailas-cloud/campushub/internal/domain/member"
	"github.com/kailas-cloud/campushub/internal/domain/project"
)

// --- reference data ---

func titles(ps []project.Project) []string {
	out := make([]string, len(ps))
	for i := range ps {
		out[i] = ps[i].Title()
	}
	return out
}

func TestProjects_AITagSelectsTwo(t *testing.T) {
	s := listing.State{}.SetQuery("").ToggleTag("AI")
	got := listing.Visible(Projects(), project.Extractor, s)
	want := []string{"AI-Powered Campus Navigator", "Robotics Lab Assistant"}
	if diff := cmp.Diff(want, titles(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestProjects_EnergyQuery(t *testing.T) {
	got := listing.Visible(Projects(), project.Extractor, listing.State{}.SetQuery("energy"))
	if diff := cmp.Diff([]string{"Sustainable Energy Monitor"}, titles(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestProjects_NoMatch(t *testing.T) {
	s := listing.State{}.SetQuery("zzz-no-such-project")
	if n := listing.Count(Projects(), project.Extractor, s); n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}
}

func TestMembers_UniversityQueryAndSkills(t *testing.T) {
	got := listing.Visible(Members(), member.Extractor, listing.NewState("university", "React"))
	if len(got) != 1 || got[0].ID() != "alex-rivera" {
		t.Errorf("got %d members", len(got))
	}
	got = listing.Visible(Members(), member.Extractor, listing.NewState("", "Python"))
	if len(got) != 2 {
		t.Errorf("Python should select Jordan and Aisha, got %d", len(got))
	}
}

func TestCatalogSizes(t *testing.T) {
	if n := len(Projects()); n != 6 {
		t.Errorf("projects = %d, want 6", n)
	}
	if n := len(Members()); n != 8 {
		t.Errorf("members = %d, want 8", n)
	}
	if n := len(Mentors()); n != 6 {
		t.Errorf("mentors = %d, want 6", n)
	}
	if n := len(Funding()); n != 6 {
		t.Errorf("funding = %d, want 6", n)
	}
}

func TestPopular(t *testing.T) {
	for _, k := range kind.All() {
		if len(Popular(k)) == 0 {
			t.Errorf("no popular chips for %s", k)
		}
	}
	if Popular("unknown") != nil {
		t.Error("unknown kind should have no chips")
	}
}

// --- loader ---

type fakeTarget struct {
	k         kind.Kind
	loaded    bool
	loadedErr error
	encoded   []string
	dropped   bool
	dropErr   error
}

func (f *fakeTarget) Kind() kind.Kind { return f.k }

func (f *fakeTarget) Loaded(context.Context) (bool, error) { return f.loaded, f.loadedErr }

func (f *fakeTarget) Drop(context.Context) error {
	if f.dropErr != nil {
		return f.dropErr
	}
	f.dropped = true
	return nil
}

func (f *fakeTarget) Encode(items []string) (db.SetItem, error) {
	f.encoded = items
	return db.SetItem{Key: string(f.k), Value: []byte("x")}, nil
}

type fakeWriter struct {
	items []db.SetItem
	err   error
}

func (w *fakeWriter) SetMulti(_ context.Context, items []db.SetItem) error {
	w.items = items
	return w.err
}

func TestLoad_SkipsLoadedCatalogs(t *testing.T) {
	a := &fakeTarget{k: kind.Projects, loaded: true}
	b := &fakeTarget{k: kind.Members}
	w := &fakeWriter{}
	l := NewLoader(w, nil, For[string](a, []string{"p1"}), For[string](b, []string{"m1", "m2"}))

	report, err := l.Load(context.Background(), false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Report{kind.Members: 2}, report); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
	if len(w.items) != 1 || w.items[0].Key != "members" {
		t.Errorf("written = %+v", w.items)
	}
	if a.encoded != nil {
		t.Error("loaded catalog should not be encoded")
	}
}

func TestLoad_Force(t *testing.T) {
	a := &fakeTarget{k: kind.Projects, loaded: true}
	w := &fakeWriter{}
	l := NewLoader(w, nil, For[string](a, []string{"p1"}))

	report, err := l.Load(context.Background(), true)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if report[kind.Projects] != 1 || len(w.items) != 1 {
		t.Errorf("report=%v written=%d", report, len(w.items))
	}
}

func TestLoad_Errors(t *testing.T) {
	l := NewLoader(&fakeWriter{}, nil, For[string](&fakeTarget{k: kind.Projects, loadedErr: errors.New("down")}, nil))
	if _, err := l.Load(context.Background(), false); err == nil {
		t.Error("expected Loaded error to surface")
	}

	l = NewLoader(&fakeWriter{err: errors.New("read only")}, nil, For[string](&fakeTarget{k: kind.Projects}, nil))
	if _, err := l.Load(context.Background(), false); err == nil {
		t.Error("expected write error to surface")
	}
}

func TestClear(t *testing.T) {
	a := &fakeTarget{k: kind.Projects, loaded: true}
	b := &fakeTarget{k: kind.Funding}
	l := NewLoader(&fakeWriter{}, nil, For[string](a, nil), For[string](b, nil))

	cleared, err := l.Clear(context.Background())
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if diff := cmp.Diff([]kind.Kind{kind.Projects, kind.Funding}, cleared); diff != "" {
		t.Errorf("cleared mismatch (-want +got):\n%s", diff)
	}
	if !a.dropped || !b.dropped {
		t.Error("every catalog should be dropped")
	}
}

func TestClear_StopsOnError(t *testing.T) {
	a := &fakeTarget{k: kind.Projects, dropErr: errors.New("down")}
	b := &fakeTarget{k: kind.Members}
	l := NewLoader(&fakeWriter{}, nil, For[string](a, nil), For[string](b, nil))

	cleared, err := l.Clear(context.Background())
	if err == nil {
		t.Fatal("expected drop error to surface")
	}
	if len(cleared) != 0 || b.dropped {
		t.Errorf("cleared=%v, members dropped=%v", cleared, b.dropped)
	}
}
