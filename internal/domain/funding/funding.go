package funding

import (
	"slices"

	"github.com/kailas-cloud/campushub/internal/domain"
	"github.com/kailas-cloud/campushub/internal/domain/listing"
)

// Opportunity is a grant, prize or fund students can apply for (immutable value object).
type Opportunity struct {
	id           string
	title        string
	organization string
	amount       string
	deadline     string
	category     string
	description  string
	requirements []string
}

// New validates and creates an Opportunity.
func New(
	id, title, organization, amount, deadline, category, description string,
	requirements []string,
) (Opportunity, error) {
	if err := domain.ValidateID(id); err != nil {
		return Opportunity{}, err
	}
	if err := domain.RequireText("title", title); err != nil {
		return Opportunity{}, err
	}
	if err := domain.RequireText("category", category); err != nil {
		return Opportunity{}, err
	}
	return Opportunity{
		id:           id,
		title:        title,
		organization: organization,
		amount:       amount,
		deadline:     deadline,
		category:     category,
		description:  description,
		requirements: slices.Clone(requirements),
	}, nil
}

// Reconstruct creates an Opportunity without validation (storage hydration).
func Reconstruct(
	id, title, organization, amount, deadline, category, description string,
	requirements []string,
) Opportunity {
	return Opportunity{
		id: id, title: title, organization: organization, amount: amount,
		deadline: deadline, category: category, description: description,
		requirements: requirements,
	}
}

// ID returns the opportunity identifier.
func (o *Opportunity) ID() string { return o.id }

// Title returns the opportunity name.
func (o *Opportunity) Title() string { return o.title }

// Organization returns the funding body.
func (o *Opportunity) Organization() string { return o.organization }

// Amount returns the award amount as display text ("$5,000 - $15,000").
func (o *Opportunity) Amount() string { return o.amount }

// Deadline returns the application deadline as display text.
func (o *Opportunity) Deadline() string { return o.deadline }

// Category returns the single category label.
func (o *Opportunity) Category() string { return o.category }

// Description returns the opportunity summary.
func (o *Opportunity) Description() string { return o.description }

// Requirements returns the application requirements. The slice is a copy.
func (o *Opportunity) Requirements() []string { return slices.Clone(o.requirements) }

// Extractor searches title, organization and description; the category is the only tag.
var Extractor = listing.Extractor[Opportunity]{
	ID:     func(o Opportunity) string { return o.id },
	Fields: func(o Opportunity) []string { return []string{o.title, o.organization, o.description} },
	Tags:   func(o Opportunity) []string { return []string{o.category} },
}
