package listing

import (
	"iter"
	"slices"
	"strings"
)

// Extractor exposes the parts of a record the filter looks at.
type Extractor[R any] struct {
	// ID returns the stable record identifier.
	ID func(R) string
	// Fields returns the searchable display text, checked by substring.
	Fields func(R) []string
	// Tags returns the record's category labels.
	Tags func(R) []string
}

// Matches reports whether r passes both the text test and the tag test.
func (e Extractor[R]) Matches(r R, s State) bool {
	return e.matchesText(r, strings.ToLower(s.query)) && e.matchesTags(r, s.tags)
}

func (e Extractor[R]) matchesText(r R, foldedQuery string) bool {
	if foldedQuery == "" {
		return true
	}
	for _, f := range e.Fields(r) {
		if strings.Contains(strings.ToLower(f), foldedQuery) {
			return true
		}
	}
	return false
}

// matchesTags uses OR semantics: any selected tag on the record is enough.
func (e Extractor[R]) matchesTags(r R, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, t := range e.Tags(r) {
		if slices.Contains(selected, t) {
			return true
		}
	}
	return false
}

// All yields the visible records lazily, in collection order.
func All[R any](records []R, e Extractor[R], s State) iter.Seq[R] {
	foldedQuery := strings.ToLower(s.query)
	return func(yield func(R) bool) {
		for _, r := range records {
			if !e.matchesText(r, foldedQuery) || !e.matchesTags(r, s.tags) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Visible returns the records that pass s, preserving collection order.
// The result never aliases records.
func Visible[R any](records []R, e Extractor[R], s State) []R {
	if s.IsEmpty() {
		out := make([]R, len(records))
		copy(out, records)
		return out
	}
	out := make([]R, 0, len(records))
	for r := range All(records, e, s) {
		out = append(out, r)
	}
	return out
}

// Count returns the number of records that pass s.
func Count[R any](records []R, e Extractor[R], s State) int {
	n := 0
	for range All(records, e, s) {
		n++
	}
	return n
}
