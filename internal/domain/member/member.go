package member

import (
	"slices"

	"github.com/kailas-cloud/campushub/internal/domain"
	"github.com/kailas-cloud/campushub/internal/domain/listing"
)

// Member is a student looking for a team (immutable value object).
type Member struct {
	id         string
	name       string
	role       string
	skills     []string
	university string
}

// New validates and creates a Member. Skills are de-duplicated.
func New(id, name, role string, skills []string, university string) (Member, error) {
	if err := domain.ValidateID(id); err != nil {
		return Member{}, err
	}
	if err := domain.RequireText("name", name); err != nil {
		return Member{}, err
	}
	return Member{
		id:         id,
		name:       name,
		role:       role,
		skills:     domain.UniqueTags(skills),
		university: university,
	}, nil
}

// Reconstruct creates a Member without validation (storage hydration).
func Reconstruct(id, name, role string, skills []string, university string) Member {
	return Member{id: id, name: name, role: role, skills: skills, university: university}
}

// ID returns the member identifier.
func (m *Member) ID() string { return m.id }

// Name returns the display name.
func (m *Member) Name() string { return m.name }

// Role returns the member's self-described role.
func (m *Member) Role() string { return m.role }

// Skills returns the member's skill labels. The slice is a copy.
func (m *Member) Skills() []string { return slices.Clone(m.skills) }

// University returns the member's institution.
func (m *Member) University() string { return m.university }

// Extractor searches name, role and university and matches on skills.
var Extractor = listing.Extractor[Member]{
	ID:     func(m Member) string { return m.id },
	Fields: func(m Member) []string { return []string{m.name, m.role, m.university} },
	Tags:   func(m Member) []string { return m.skills },
}
