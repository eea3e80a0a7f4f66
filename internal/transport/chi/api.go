package chi

import (
	"github.com/kailas-cloud/campushub/internal/domain/funding"
	domlisting "github.com/kailas-cloud/campushub/internal/domain/listing"
	"github.com/kailas-cloud/campushub/internal/domain/member"
	"github.com/kailas-cloud/campushub/internal/domain/mentor"
	"github.com/kailas-cloud/campushub/internal/domain/project"
	listinguc "github.com/kailas-cloud/campushub/internal/usecase/listing"
)

// ErrorCode is the machine-readable error code of an ErrorResponse.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest    ErrorCode = "bad_request"
	ErrorCodeUnauthorized  ErrorCode = "unauthorized"
	ErrorCodeNotFound      ErrorCode = "not_found"
	ErrorCodeUnknownKind   ErrorCode = "unknown_kind"
	ErrorCodeInvalidAction ErrorCode = "invalid_action"
	ErrorCodeInternalError ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Filter is the wire form of a filter state.
type Filter struct {
	Query string   `json:"query"`
	Tags  []string `json:"tags"`
}

// PageResponse is the result of a browse.
type PageResponse struct {
	Items  any    `json:"items"`
	Count  int    `json:"count"`
	Total  int    `json:"total"`
	Filter Filter `json:"filter"`
}

// FilterRequest asks the server to apply one action to a client-held filter state.
type FilterRequest struct {
	Filter Filter `json:"filter"`
	Action string `json:"action"`
	Value  string `json:"value"`
}

// TagCount is a tag with the number of records carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TagsResponse lists the chips of a catalog.
type TagsResponse struct {
	Popular []string   `json:"popular"`
	All     []TagCount `json:"all"`
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ProjectResponse is the wire form of a project.
type ProjectResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	TeamSize    int      `json:"team_size"`
	Duration    string   `json:"duration"`
	Difficulty  string   `json:"difficulty"`
}

// MemberResponse is the wire form of a team member.
type MemberResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Skills     []string `json:"skills"`
	University string   `json:"university"`
}

// MentorResponse is the wire form of a mentor.
type MentorResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Expertise   []string `json:"expertise"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
}

// FundingResponse is the wire form of a funding opportunity.
type FundingResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Amount       string   `json:"amount"`
	Deadline     string   `json:"deadline"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

func filterToAPI(s domlisting.State) Filter {
	return Filter{Query: s.Query(), Tags: s.SelectedTags()}
}

func filterFromAPI(f Filter) domlisting.State {
	return domlisting.NewState(f.Query, f.Tags...)
}

func tagsToAPI(sum listinguc.TagSummary) TagsResponse {
	all := make([]TagCount, len(sum.All))
	for i, tc := range sum.All {
		all[i] = TagCount{Tag: tc.Tag, Count: tc.Count}
	}
	return TagsResponse{Popular: nonNil(sum.Popular), All: all}
}

func projectToAPI(p project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		Tags:        nonNil(p.Tags()),
		TeamSize:    p.TeamSize(),
		Duration:    p.Duration(),
		Difficulty:  string(p.Difficulty()),
	}
}

func memberToAPI(m member.Member) MemberResponse {
	return MemberResponse{
		ID:         m.ID(),
		Name:       m.Name(),
		Role:       m.Role(),
		Skills:     nonNil(m.Skills()),
		University: m.University(),
	}
}

func mentorToAPI(m mentor.Mentor) MentorResponse {
	return MentorResponse{
		ID:          m.ID(),
		Name:        m.Name(),
		Title:       m.Title(),
		Company:     m.Company(),
		Expertise:   nonNil(m.Expertise()),
		Rating:      m.Rating(),
		Description: m.Description(),
	}
}

func fundingToAPI(o funding.Opportunity) FundingResponse {
	return FundingResponse{
		ID:           o.ID(),
		Title:        o.Title(),
		Organization: o.Organization(),
		Amount:       o.Amount(),
		Deadline:     o.Deadline(),
		Category:     o.Category(),
		Description:  o.Description(),
		Requirements: nonNil(o.Requirements()),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
