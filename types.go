package campushub

import (
	"github.com/kailas-cloud/campushub/internal/domain/funding"
	domlisting "github.com/kailas-cloud/campushub/internal/domain/listing"
	"github.com/kailas-cloud/campushub/internal/domain/member"
	"github.com/kailas-cloud/campushub/internal/domain/mentor"
	"github.com/kailas-cloud/campushub/internal/domain/project"
	listinguc "github.com/kailas-cloud/campushub/internal/usecase/listing"
)

type (
	projectDomain = project.Project
	memberDomain  = member.Member
	mentorDomain  = mentor.Mentor
	fundingDomain = funding.Opportunity
)

// Project is a collaboration project looking for a team.
type Project struct {
	ID          string   `campushub:"id,id"`
	Title       string   `campushub:"title,search"`
	Description string   `campushub:"description,search"`
	Tags        []string `campushub:"tags,tags"`
	TeamSize    int      `campushub:"team_size"`
	Duration    string   `campushub:"duration"`
	Difficulty  string   `campushub:"difficulty"` // Easy, Medium or Hard
}

// Member is a student available as a teammate.
type Member struct {
	ID         string   `campushub:"id,id"`
	Name       string   `campushub:"name,search"`
	Role       string   `campushub:"role,search"`
	Skills     []string `campushub:"skills,tags"`
	University string   `campushub:"university,search"`
}

// Mentor is an industry or academic mentor.
type Mentor struct {
	ID          string   `campushub:"id,id"`
	Name        string   `campushub:"name,search"`
	Title       string   `campushub:"title,search"`
	Company     string   `campushub:"company,search"`
	Expertise   []string `campushub:"expertise,tags"`
	Rating      float64  `campushub:"rating"`
	Description string   `campushub:"description,search"`
}

// Funding is a grant, competition or fellowship.
type Funding struct {
	ID           string   `campushub:"id,id"`
	Title        string   `campushub:"title,search"`
	Organization string   `campushub:"organization,search"`
	Amount       string   `campushub:"amount"`
	Deadline     string   `campushub:"deadline"`
	Category     string   `campushub:"category,tags"`
	Description  string   `campushub:"description,search"`
	Requirements []string `campushub:"requirements"`
}

// FilterState is a query plus the selected tags.
// The zero value selects every record.
type FilterState struct {
	Query string
	Tags  []string
}

// Page is the visible subset of a catalog.
type Page[R any] struct {
	Items  []R
	Count  int
	Total  int
	Filter FilterState
}

// TagCount is a tag and the number of records carrying it.
type TagCount struct {
	Tag   string
	Count int
}

// TagSummary lists the chips a catalog can be filtered by.
type TagSummary struct {
	Popular []string
	All     []TagCount
}

// Filter actions accepted by Browser.Apply.
const (
	ActionSetQuery  = string(domlisting.ActionSetQuery)
	ActionToggleTag = string(domlisting.ActionToggleTag)
	ActionAddTag    = string(domlisting.ActionAddTag)
	ActionRemoveTag = string(domlisting.ActionRemoveTag)
	ActionClearAll  = string(domlisting.ActionClearAll)
)

func toState(f FilterState) domlisting.State {
	return domlisting.NewState(f.Query, f.Tags...)
}

func fromState(s domlisting.State) FilterState {
	return FilterState{Query: s.Query(), Tags: s.SelectedTags()}
}

func fromSummary(s listinguc.TagSummary) TagSummary {
	all := make([]TagCount, len(s.All))
	for i, tc := range s.All {
		all[i] = TagCount{Tag: tc.Tag, Count: tc.Count}
	}
	return TagSummary{Popular: append([]string{}, s.Popular...), All: all}
}

func fromProject(p project.Project) Project {
	return Project{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		Tags:        append([]string{}, p.Tags()...),
		TeamSize:    p.TeamSize(),
		Duration:    p.Duration(),
		Difficulty:  string(p.Difficulty()),
	}
}

func fromMember(m member.Member) Member {
	return Member{
		ID:         m.ID(),
		Name:       m.Name(),
		Role:       m.Role(),
		Skills:     append([]string{}, m.Skills()...),
		University: m.University(),
	}
}

func fromMentor(m mentor.Mentor) Mentor {
	return Mentor{
		ID:          m.ID(),
		Name:        m.Name(),
		Title:       m.Title(),
		Company:     m.Company(),
		Expertise:   append([]string{}, m.Expertise()...),
		Rating:      m.Rating(),
		Description: m.Description(),
	}
}

func fromFunding(o funding.Opportunity) Funding {
	return Funding{
		ID:           o.ID(),
		Title:        o.Title(),
		Organization: o.Organization(),
		Amount:       o.Amount(),
		Deadline:     o.Deadline(),
		Category:     o.Category(),
		Description:  o.Description(),
		Requirements: append([]string{}, o.Requirements()...),
	}
}
