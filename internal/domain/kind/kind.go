package kind

// Kind names one of the served catalogs.
type Kind string

// Catalog kinds.
const (
	Projects Kind = "projects"
	Members  Kind = "members"
	Mentors  Kind = "mentors"
	Funding  Kind = "funding"
)

// All lists the catalogs in display order.
func All() []Kind { return []Kind{Projects, Members, Mentors, Funding} }

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == Projects || k == Members || k == Mentors || k == Funding
}

func (k Kind) String() string { return string(k) }
