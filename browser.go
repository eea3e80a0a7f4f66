package campushub

import (
	"context"
	"fmt"

	domlisting "github.com/kailas-cloud/campushub/internal/domain/listing"
)

// Browser owns the filter state of one listing session: the search box and
// the selected chips. Every mutation replaces the state wholesale, so a State
// taken earlier is never changed by later calls.
//
// A Browser is not safe for concurrent use.
type Browser[R any] struct {
	cat   *Catalog[R]
	state domlisting.State
}

// SetQuery replaces the query verbatim. Whitespace is kept.
func (b *Browser[R]) SetQuery(text string) *Browser[R] {
	b.state = b.state.SetQuery(text)
	return b
}

// ToggleTag selects tag, or deselects it if already selected.
func (b *Browser[R]) ToggleTag(tag string) *Browser[R] {
	b.state = b.state.ToggleTag(tag)
	return b
}

// AddTag selects tag if it is not selected yet.
func (b *Browser[R]) AddTag(tag string) *Browser[R] {
	b.state = b.state.AddTag(tag)
	return b
}

// RemoveTag deselects tag if it is selected.
func (b *Browser[R]) RemoveTag(tag string) *Browser[R] {
	b.state = b.state.RemoveTag(tag)
	return b
}

// ClearAll empties the query and the tag selection.
func (b *Browser[R]) ClearAll() *Browser[R] {
	b.state = b.state.ClearAll()
	return b
}

// Apply performs a named action (ActionSetQuery, ActionToggleTag, ...).
// Unknown actions return ErrInvalidAction and leave the state unchanged.
func (b *Browser[R]) Apply(action, value string) error {
	next, err := domlisting.Apply(b.state, domlisting.Action(action), value)
	if err != nil {
		return fmt.Errorf("apply: %w", err)
	}
	b.state = next
	return nil
}

// Reset replaces the state, e.g. with one restored from a URL.
func (b *Browser[R]) Reset(f FilterState) *Browser[R] {
	b.state = toState(f)
	return b
}

// State returns a copy of the current filter state.
func (b *Browser[R]) State() FilterState { return fromState(b.state) }

// Visible returns the records passing the current filter, in catalog order.
func (b *Browser[R]) Visible(ctx context.Context) ([]R, error) {
	page, err := b.cat.browse(ctx, b.state)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// Count returns how many records pass the current filter.
func (b *Browser[R]) Count(ctx context.Context) (int, error) {
	page, err := b.cat.browse(ctx, b.state)
	if err != nil {
		return 0, err
	}
	return page.Count, nil
}

// Page returns the visible records together with totals and the state used.
func (b *Browser[R]) Page(ctx context.Context) (Page[R], error) {
	return b.cat.browse(ctx, b.state)
}
