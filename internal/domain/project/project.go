package project

import (
	"fmt"
	"slices"

	"github.com/kailas-cloud/campushub/internal/domain"
	"github.com/kailas-cloud/campushub/internal/domain/listing"
)

// Difficulty is the advertised effort level of a project.
type Difficulty string

// Difficulty levels.
const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// IsValid checks if the difficulty is one of the supported values.
func (d Difficulty) IsValid() bool {
	return d == Easy || d == Medium || d == Hard
}

// Project is a collaboration project open for teammates (immutable value object).
type Project struct {
	id          string
	title       string
	description string
	tags        []string
	teamSize    int
	duration    string
	difficulty  Difficulty
}

// New validates and creates a Project. Tags are de-duplicated.
func New(
	id, title, description string, tags []string,
	teamSize int, duration string, difficulty Difficulty,
) (Project, error) {
	if err := domain.ValidateID(id); err != nil {
		return Project{}, err
	}
	if err := domain.RequireText("title", title); err != nil {
		return Project{}, err
	}
	if teamSize < 0 {
		return Project{}, fmt.Errorf("%w: team size must be non-negative", domain.ErrInvalidRecord)
	}
	if difficulty != "" && !difficulty.IsValid() {
		return Project{}, fmt.Errorf("%w: invalid difficulty %q", domain.ErrInvalidRecord, difficulty)
	}
	return Project{
		id:          id,
		title:       title,
		description: description,
		tags:        domain.UniqueTags(tags),
		teamSize:    teamSize,
		duration:    duration,
		difficulty:  difficulty,
	}, nil
}

// Reconstruct creates a Project without validation (storage hydration).
func Reconstruct(
	id, title, description string, tags []string,
	teamSize int, duration string, difficulty Difficulty,
) Project {
	return Project{
		id: id, title: title, description: description, tags: tags,
		teamSize: teamSize, duration: duration, difficulty: difficulty,
	}
}

// ID returns the project identifier.
func (p *Project) ID() string { return p.id }

// Title returns the project title.
func (p *Project) Title() string { return p.title }

// Description returns the project pitch.
func (p *Project) Description() string { return p.description }

// Tags returns the project category tags. The slice is a copy.
func (p *Project) Tags() []string { return slices.Clone(p.tags) }

// TeamSize returns the target team size.
func (p *Project) TeamSize() int { return p.teamSize }

// Duration returns the expected duration, as display text.
func (p *Project) Duration() string { return p.duration }

// Difficulty returns the effort level.
func (p *Project) Difficulty() Difficulty { return p.difficulty }

// Extractor searches title and description and matches on tags.
var Extractor = listing.Extractor[Project]{
	ID:     func(p Project) string { return p.id },
	Fields: func(p Project) []string { return []string{p.title, p.description} },
	Tags:   func(p Project) []string { return p.tags },
}
