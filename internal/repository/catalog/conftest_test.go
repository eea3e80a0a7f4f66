package catalog

import (
	"context"
	"testing"

	"github.com/kailas-cloud/campushub/internal/db"
	"github.com/kailas-cloud/campushub/internal/domain/project"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	data     map[string][]byte
	getErr   error
	setErr   error
	delErr   error
	existErr error
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string][]byte)}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStore) Set(_ context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *mockStore) Del(_ context.Context, key string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, key)
	return nil
}

func (m *mockStore) Exists(_ context.Context, key string) (bool, error) {
	if m.existErr != nil {
		return false, m.existErr
	}
	_, ok := m.data[key]
	return ok, nil
}

func testProjects(t *testing.T) []project.Project {
	t.Helper()
	a, err := project.New("1", "AI-Powered Campus Navigator", "Create an AI system",
		[]string{"AI", "Mobile App"}, 4, "3 months", project.Medium)
	if err != nil {
		t.Fatalf("project.New: %v", err)
	}
	b, err := project.New("2", "Sustainable Energy Monitor", "Build a real-time dashboard",
		[]string{"IoT"}, 5, "6 months", project.Hard)
	if err != nil {
		t.Fatalf("project.New: %v", err)
	}
	return []project.Project{a, b}
}
