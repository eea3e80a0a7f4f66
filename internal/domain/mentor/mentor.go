package mentor

import (
	"fmt"
	"slices"

	"github.com/kailas-cloud/campushub/internal/domain"
	"github.com/kailas-cloud/campushub/internal/domain/listing"
)

// MaxRating is the top of the mentor rating scale.
const MaxRating = 5.0

// Mentor is an industry or academic mentor (immutable value object).
type Mentor struct {
	id          string
	name        string
	title       string
	company     string
	expertise   []string
	rating      float64
	description string
}

// New validates and creates a Mentor. Expertise is de-duplicated.
func New(
	id, name, title, company string, expertise []string,
	rating float64, description string,
) (Mentor, error) {
	if err := domain.ValidateID(id); err != nil {
		return Mentor{}, err
	}
	if err := domain.RequireText("name", name); err != nil {
		return Mentor{}, err
	}
	if rating < 0 || rating > MaxRating {
		return Mentor{}, fmt.Errorf("%w: rating must be between 0 and %.0f", domain.ErrInvalidRecord, MaxRating)
	}
	return Mentor{
		id:          id,
		name:        name,
		title:       title,
		company:     company,
		expertise:   domain.UniqueTags(expertise),
		rating:      rating,
		description: description,
	}, nil
}

// Reconstruct creates a Mentor without validation (storage hydration).
func Reconstruct(
	id, name, title, company string, expertise []string,
	rating float64, description string,
) Mentor {
	return Mentor{
		id: id, name: name, title: title, company: company,
		expertise: expertise, rating: rating, description: description,
	}
}

// ID returns the mentor identifier.
func (m *Mentor) ID() string { return m.id }

// Name returns the display name.
func (m *Mentor) Name() string { return m.name }

// Title returns the job title.
func (m *Mentor) Title() string { return m.title }

// Company returns the employer.
func (m *Mentor) Company() string { return m.company }

// Expertise returns the expertise labels. The slice is a copy.
func (m *Mentor) Expertise() []string { return slices.Clone(m.expertise) }

// Rating returns the average student rating.
func (m *Mentor) Rating() float64 { return m.rating }

// Description returns the mentor bio.
func (m *Mentor) Description() string { return m.description }

// Extractor searches name, title, company and bio and matches on expertise.
var Extractor = listing.Extractor[Mentor]{
	ID:     func(m Mentor) string { return m.id },
	Fields: func(m Mentor) []string { return []string{m.name, m.title, m.company, m.description} },
	Tags:   func(m Mentor) []string { return m.expertise },
}
