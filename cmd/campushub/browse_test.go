package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/campushub/internal/domain"
	"github.com/kailas-cloud/campushub/internal/domain/funding"
	"github.com/kailas-cloud/campushub/internal/domain/kind"
	domlisting "github.com/kailas-cloud/campushub/internal/domain/listing"
	"github.com/kailas-cloud/campushub/internal/domain/member"
	"github.com/kailas-cloud/campushub/internal/domain/mentor"
	"github.com/kailas-cloud/campushub/internal/domain/project"
	"github.com/kailas-cloud/campushub/internal/seed"
	chiTransport "github.com/kailas-cloud/campushub/internal/transport/chi"
	listinguc "github.com/kailas-cloud/campushub/internal/usecase/listing"
)

type sliceProvider[R any] []R

func (p sliceProvider[R]) FetchRecords(_ context.Context) ([]R, error) { return p, nil }

func testServices() chiTransport.Services {
	return chiTransport.Services{
		Projects: listinguc.New[project.Project](kind.Projects,
			sliceProvider[project.Project](seed.Projects()), project.Extractor),
		Members: listinguc.New[member.Member](kind.Members,
			sliceProvider[member.Member](seed.Members()), member.Extractor),
		Mentors: listinguc.New[mentor.Mentor](kind.Mentors,
			sliceProvider[mentor.Mentor](seed.Mentors()), mentor.Extractor),
		Funding: listinguc.New[funding.Opportunity](kind.Funding,
			sliceProvider[funding.Opportunity](seed.Funding()), funding.Extractor),
	}
}

func TestBrowse_TagFilter(t *testing.T) {
	var buf bytes.Buffer
	err := browse(context.Background(), &buf, testServices(), kind.Projects, domlisting.NewState("", "AI"))
	if err != nil {
		t.Fatalf("browse: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"AI-Powered Campus Navigator", "Robotics Lab Assistant", "2 of 6 projects"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Sustainable Energy Monitor") {
		t.Errorf("filtered-out project printed:\n%s", out)
	}
}

func TestBrowse_EveryKind(t *testing.T) {
	for _, k := range kind.All() {
		t.Run(k.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := browse(context.Background(), &buf, testServices(), k, domlisting.State{}); err != nil {
				t.Fatalf("browse: %v", err)
			}
			if !strings.Contains(buf.String(), " "+k.String()+"\n") {
				t.Errorf("missing summary line:\n%s", buf.String())
			}
		})
	}
}

func TestBrowse_UnknownKind(t *testing.T) {
	var buf bytes.Buffer
	err := browse(context.Background(), &buf, testServices(), kind.Kind("courses"), domlisting.State{})
	if !errors.Is(err, domain.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestBrowseCmd_RejectsUnknownKindBeforeConnecting(t *testing.T) {
	cmd := rootCmd()
	cmd.SetArgs([]string{"browse", "courses"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if !errors.Is(err, domain.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := rootCmd()
	cmd.SetArgs([]string{"version"})
	cmd.SetOut(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "campushub dev") {
		t.Errorf("unexpected version output: %q", buf.String())
	}
}
