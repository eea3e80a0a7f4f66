package catalog

import (
	"github.com/kailas-cloud/campushub/internal/domain/funding"
	"github.com/kailas-cloud/campushub/internal/domain/kind"
	"github.com/kailas-cloud/campushub/internal/domain/member"
	"github.com/kailas-cloud/campushub/internal/domain/mentor"
	"github.com/kailas-cloud/campushub/internal/domain/project"
)

// ProjectRow is the stored form of a project.
type ProjectRow struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	TeamSize    int      `json:"team_size"`
	Duration    string   `json:"duration"`
	Difficulty  string   `json:"difficulty"`
}

// NewProjects creates the project catalog repository.
func NewProjects(s store) *Repo[project.Project, ProjectRow] {
	return newRepo(s, kind.Projects,
		func(p project.Project) string { return p.ID() },
		func(p project.Project) ProjectRow {
			return ProjectRow{
				ID: p.ID(), Title: p.Title(), Description: p.Description(), Tags: p.Tags(),
				TeamSize: p.TeamSize(), Duration: p.Duration(), Difficulty: string(p.Difficulty()),
			}
		},
		func(r ProjectRow) project.Project {
			return project.Reconstruct(r.ID, r.Title, r.Description, r.Tags,
				r.TeamSize, r.Duration, project.Difficulty(r.Difficulty))
		},
	)
}

// MemberRow is the stored form of a team member.
type MemberRow struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Skills     []string `json:"skills"`
	University string   `json:"university"`
}

// NewMembers creates the team member catalog repository.
func NewMembers(s store) *Repo[member.Member, MemberRow] {
	return newRepo(s, kind.Members,
		func(m member.Member) string { return m.ID() },
		func(m member.Member) MemberRow {
			return MemberRow{ID: m.ID(), Name: m.Name(), Role: m.Role(), Skills: m.Skills(), University: m.University()}
		},
		func(r MemberRow) member.Member {
			return member.Reconstruct(r.ID, r.Name, r.Role, r.Skills, r.University)
		},
	)
}

// MentorRow is the stored form of a mentor.
type MentorRow struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Expertise   []string `json:"expertise"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
}

// NewMentors creates the mentor catalog repository.
func NewMentors(s store) *Repo[mentor.Mentor, MentorRow] {
	return newRepo(s, kind.Mentors,
		func(m mentor.Mentor) string { return m.ID() },
		func(m mentor.Mentor) MentorRow {
			return MentorRow{
				ID: m.ID(), Name: m.Name(), Title: m.Title(), Company: m.Company(),
				Expertise: m.Expertise(), Rating: m.Rating(), Description: m.Description(),
			}
		},
		func(r MentorRow) mentor.Mentor {
			return mentor.Reconstruct(r.ID, r.Name, r.Title, r.Company, r.Expertise, r.Rating, r.Description)
		},
	)
}

// FundingRow is the stored form of a funding opportunity.
type FundingRow struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Amount       string   `json:"amount"`
	Deadline     string   `json:"deadline"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// NewFunding creates the funding opportunity catalog repository.
func NewFunding(s store) *Repo[funding.Opportunity, FundingRow] {
	return newRepo(s, kind.Funding,
		func(o funding.Opportunity) string { return o.ID() },
		func(o funding.Opportunity) FundingRow {
			return FundingRow{
				ID: o.ID(), Title: o.Title(), Organization: o.Organization(), Amount: o.Amount(),
				Deadline: o.Deadline(), Category: o.Category(), Description: o.Description(),
				Requirements: o.Requirements(),
			}
		},
		func(r FundingRow) funding.Opportunity {
			return funding.Reconstruct(r.ID, r.Title, r.Organization, r.Amount,
				r.Deadline, r.Category, r.Description, r.Requirements)
		},
	)
}
