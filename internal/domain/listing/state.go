// Package listing narrows a record collection by a free-text query and a set
// of selected tags.
package listing

import "slices"

// State is the filter state of one listing session (immutable value object).
// Every mutator returns a new State and leaves the receiver untouched.
type State struct {
	query string
	tags  []string
}

// NewState builds a State from wire input. Duplicate tags are dropped,
// first occurrence wins.
func NewState(query string, tags ...string) State {
	s := State{query: query}
	for _, t := range tags {
		if !slices.Contains(s.tags, t) {
			s.tags = append(s.tags, t)
		}
	}
	return s
}

// Query returns the free-text query as typed.
func (s State) Query() string { return s.query }

// SelectedTags returns a copy of the selected tags in insertion order.
func (s State) SelectedTags() []string {
	if len(s.tags) == 0 {
		return []string{}
	}
	return slices.Clone(s.tags)
}

// HasTag reports whether tag is selected.
func (s State) HasTag(tag string) bool { return slices.Contains(s.tags, tag) }

// IsEmpty reports whether the state selects every record.
func (s State) IsEmpty() bool { return s.query == "" && len(s.tags) == 0 }

// SetQuery replaces the query verbatim. No trimming.
func (s State) SetQuery(text string) State {
	return State{query: text, tags: s.tags}
}

// ToggleTag removes tag if selected, otherwise appends it.
func (s State) ToggleTag(tag string) State {
	if s.HasTag(tag) {
		return s.RemoveTag(tag)
	}
	return s.AddTag(tag)
}

// AddTag appends tag unless it is already selected.
func (s State) AddTag(tag string) State {
	if s.HasTag(tag) {
		return s
	}
	tags := make([]string, len(s.tags), len(s.tags)+1)
	copy(tags, s.tags)
	return State{query: s.query, tags: append(tags, tag)}
}

// RemoveTag drops tag from the selection. Unknown tags are a no-op.
func (s State) RemoveTag(tag string) State {
	i := slices.Index(s.tags, tag)
	if i < 0 {
		return s
	}
	tags := make([]string, 0, len(s.tags)-1)
	tags = append(tags, s.tags[:i]...)
	tags = append(tags, s.tags[i+1:]...)
	return State{query: s.query, tags: tags}
}

// ClearAll resets both the query and the tag selection.
func (s State) ClearAll() State { return State{} }

// Equal reports whether two states select the same query and tags in the same order.
func (s State) Equal(o State) bool {
	return s.query == o.query && slices.Equal(s.tags, o.tags)
}
