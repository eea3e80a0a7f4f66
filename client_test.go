package campushub

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newEmbeddedClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	c, err := New(context.Background(), append([]Option{WithEmbedded()}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestNew_NoStore(t *testing.T) {
	_, err := New(context.Background())
	if err == nil {
		t.Fatal("expected error when no store option provided")
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := &clientConfig{driver: "unknown", addrs: []string{"localhost:1234"}}
	_, err := createStore(cfg)
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestNew_EmptyAddress(t *testing.T) {
	cfg := &clientConfig{}
	WithValkey("", "").apply(cfg)
	if _, err := createStore(cfg); err == nil {
		t.Fatal("expected error for empty address")
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}

	WithValkey("localhost:6379", "secret").apply(cfg)
	if cfg.driver != driverValkey {
		t.Errorf("driver = %q, want valkey", cfg.driver)
	}
	if cfg.addrs[0] != "localhost:6379" {
		t.Errorf("addr = %q, want localhost:6379", cfg.addrs[0])
	}
	if cfg.password != "secret" {
		t.Errorf("password = %q, want secret", cfg.password)
	}

	WithRedis("localhost:6380", "pass").apply(cfg)
	if cfg.driver != driverRedis {
		t.Errorf("driver = %q, want redis", cfg.driver)
	}

	WithEmbedded().apply(cfg)
	if cfg.driver != driverEmbedded || cfg.addrs != nil || cfg.password != "" {
		t.Errorf("embedded should reset connection settings, got %+v", cfg)
	}

	WithKeyPrefix("tenant-a:").apply(cfg)
	WithStandalone().apply(cfg)
	WithForceSeed().apply(cfg)
	if cfg.keyPrefix != "tenant-a:" || !cfg.standalone || !cfg.seed || !cfg.seedForce {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestClient_Close_NilStore(t *testing.T) {
	c := &Client{store: nil}
	c.Close()
}

func TestClient_UnseededCatalogIsEmpty(t *testing.T) {
	c := newEmbeddedClient(t)
	ctx := context.Background()

	page, err := c.Projects().Browse(ctx, FilterState{})
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if page.Items == nil || page.Count != 0 || page.Total != 0 {
		t.Errorf("expected empty non-nil page, got %+v", page)
	}

	if _, err := c.Projects().Get(ctx, "1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_SeededProjects(t *testing.T) {
	c := newEmbeddedClient(t, WithSeed())
	ctx := context.Background()

	page, err := c.Projects().Browse(ctx, FilterState{Tags: []string{"AI"}})
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	got := make([]string, len(page.Items))
	for i, p := range page.Items {
		got[i] = p.Title
	}
	want := []string{"AI-Powered Campus Navigator", "Robotics Lab Assistant"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}
	if page.Total != 6 {
		t.Errorf("Total = %d, want 6", page.Total)
	}

	p, err := c.Projects().Get(ctx, "2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Title != "Sustainable Energy Monitor" || p.Difficulty != "Hard" {
		t.Errorf("unexpected project %+v", p)
	}
}

func TestClient_EveryCatalogSeeded(t *testing.T) {
	c := newEmbeddedClient(t, WithSeed())
	ctx := context.Background()

	counts := map[string]func() (int, error){
		"projects": func() (int, error) { return c.Projects().Count(ctx, FilterState{}) },
		"members":  func() (int, error) { return c.Members().Count(ctx, FilterState{}) },
		"mentors":  func() (int, error) { return c.Mentors().Count(ctx, FilterState{}) },
		"funding":  func() (int, error) { return c.Funding().Count(ctx, FilterState{}) },
	}
	want := map[string]int{"projects": 6, "members": 8, "mentors": 6, "funding": 6}

	for name, count := range counts {
		n, err := count()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if n != want[name] {
			t.Errorf("%s: count = %d, want %d", name, n, want[name])
		}
	}
}

func TestClient_SeedIsIdempotentUnlessForced(t *testing.T) {
	c := newEmbeddedClient(t, WithSeed())
	ctx := context.Background()

	report, err := c.Seed(ctx, false)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(report) != 0 {
		t.Errorf("expected nothing written, got %v", report)
	}

	report, err = c.Seed(ctx, true)
	if err != nil {
		t.Fatalf("Seed(force): %v", err)
	}
	if report["members"] != 8 {
		t.Errorf("forced seed report = %v", report)
	}
}

func TestClient_Ping(t *testing.T) {
	c := newEmbeddedClient(t)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestClient_MetricsRecorded(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := newEmbeddedClient(t, WithSeed(), WithMetrics(reg))

	if _, err := c.Members().Browse(context.Background(), FilterState{Query: "design"}); err != nil {
		t.Fatalf("Browse: %v", err)
	}

	n, err := testutil.GatherAndCount(reg, "campushub_lib_operations_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n == 0 {
		t.Error("expected operation metrics to be recorded")
	}
}
