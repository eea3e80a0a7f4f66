package listing

import (
	"fmt"

	"github.com/kailas-cloud/campushub/internal/domain"
)

// Action names a filter interaction a host can replay against a State.
type Action string

// Filter actions.
const (
	ActionSetQuery  Action = "set_query"
	ActionToggleTag Action = "toggle_tag"
	ActionAddTag    Action = "add_tag"
	ActionRemoveTag Action = "remove_tag"
	ActionClearAll  Action = "clear_all"
)

// IsValid checks if the action is one of the supported values.
func (a Action) IsValid() bool {
	switch a {
	case ActionSetQuery, ActionToggleTag, ActionAddTag, ActionRemoveTag, ActionClearAll:
		return true
	}
	return false
}

// Apply dispatches a to the matching reducer. value is the query text or the
// tag, and is ignored by ActionClearAll.
func Apply(s State, a Action, value string) (State, error) {
	switch a {
	case ActionSetQuery:
		return s.SetQuery(value), nil
	case ActionToggleTag:
		return s.ToggleTag(value), nil
	case ActionAddTag:
		return s.AddTag(value), nil
	case ActionRemoveTag:
		return s.RemoveTag(value), nil
	case ActionClearAll:
		return s.ClearAll(), nil
	default:
		return s, fmt.Errorf("%w: %q", domain.ErrInvalidAction, a)
	}
}
