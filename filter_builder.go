package campushub

import (
	"context"

	domlisting "github.com/kailas-cloud/campushub/internal/domain/listing"
)

// FilterBuilder is a fluent builder for one-shot filtered reads.
type FilterBuilder[R any] struct {
	cat   *Catalog[R]
	state domlisting.State
}

// Query sets the free-text query (case-insensitive substring).
func (b *FilterBuilder[R]) Query(q string) *FilterBuilder[R] {
	b.state = b.state.SetQuery(q)
	return b
}

// Tag selects a tag. Records carrying any selected tag match.
func (b *FilterBuilder[R]) Tag(tag string) *FilterBuilder[R] {
	b.state = b.state.AddTag(tag)
	return b
}

// Tags selects several tags.
func (b *FilterBuilder[R]) Tags(tags ...string) *FilterBuilder[R] {
	for _, t := range tags {
		b.state = b.state.AddTag(t)
	}
	return b
}

// Do executes the filter.
func (b *FilterBuilder[R]) Do(ctx context.Context) (Page[R], error) {
	return b.cat.browse(ctx, b.state)
}

// Count executes the filter and returns only the number of visible records.
func (b *FilterBuilder[R]) Count(ctx context.Context) (int, error) {
	page, err := b.cat.browse(ctx, b.state)
	if err != nil {
		return 0, err
	}
	return page.Count, nil
}
