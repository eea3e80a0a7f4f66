package campushub

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/campushub/internal/domain/kind"
	domlisting "github.com/kailas-cloud/campushub/internal/domain/listing"
	listinguc "github.com/kailas-cloud/campushub/internal/usecase/listing"
)

// Catalog is an ordered record collection that can be browsed with a filter.
// It is safe for concurrent use; each caller brings its own FilterState.
type Catalog[R any] struct {
	svc *listinguc.Service[R]
	obs *observer
}

func newCatalog[R any](
	k kind.Kind, p listinguc.Provider[R], ex domlisting.Extractor[R], popular []string, obs *observer,
) *Catalog[R] {
	svc := listinguc.New(k, p, ex)
	if popular != nil {
		svc = svc.WithPopular(popular)
	}
	return &Catalog[R]{svc: svc, obs: obs}
}

// Name returns the catalog name (projects, members, ...).
func (c *Catalog[R]) Name() string { return c.svc.Kind().String() }

// Browse returns the records visible under f, in catalog order.
func (c *Catalog[R]) Browse(ctx context.Context, f FilterState) (Page[R], error) {
	return c.browse(ctx, toState(f))
}

func (c *Catalog[R]) browse(ctx context.Context, s domlisting.State) (_ Page[R], err error) {
	defer func(start time.Time) { c.obs.observe(c.Name(), "browse", start, err) }(time.Now())

	page, err := c.svc.Browse(ctx, s)
	if err != nil {
		return Page[R]{}, fmt.Errorf("browse: %w", err)
	}
	c.obs.observeVisible(c.Name(), page.Count)

	return Page[R]{
		Items:  page.Items,
		Count:  page.Count,
		Total:  page.Total,
		Filter: fromState(page.State),
	}, nil
}

// Count returns how many records are visible under f.
func (c *Catalog[R]) Count(ctx context.Context, f FilterState) (int, error) {
	page, err := c.browse(ctx, toState(f))
	if err != nil {
		return 0, err
	}
	return page.Count, nil
}

// Get returns the record with the given id, or ErrNotFound.
func (c *Catalog[R]) Get(ctx context.Context, id string) (_ R, err error) {
	defer func(start time.Time) { c.obs.observe(c.Name(), "get", start, err) }(time.Now())

	rec, err := c.svc.Get(ctx, id)
	if err != nil {
		var zero R
		return zero, fmt.Errorf("get: %w", err)
	}
	return rec, nil
}

// Tags returns the suggested chips and every tag in the catalog with its record count.
func (c *Catalog[R]) Tags(ctx context.Context) (_ TagSummary, err error) {
	defer func(start time.Time) { c.obs.observe(c.Name(), "tags", start, err) }(time.Now())

	sum, err := c.svc.Tags(ctx)
	if err != nil {
		return TagSummary{}, fmt.Errorf("tags: %w", err)
	}
	return fromSummary(sum), nil
}

// Browser starts an interactive filtering session with an empty filter.
func (c *Catalog[R]) Browser() *Browser[R] {
	return &Browser[R]{cat: c}
}

// Filter returns a fluent one-shot filter builder.
func (c *Catalog[R]) Filter() *FilterBuilder[R] {
	return &FilterBuilder[R]{cat: c}
}

// converted adapts a provider of domain records to public records.
type converted[D, R any] struct {
	src  listinguc.Provider[D]
	conv func(D) R
}

func (p converted[D, R]) FetchRecords(ctx context.Context) ([]R, error) {
	items, err := p.src.FetchRecords(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by the listing service
	}
	out := make([]R, len(items))
	for i, it := range items {
		out[i] = p.conv(it)
	}
	return out, nil
}

// static serves a fixed in-memory collection. Every read hands out clones,
// so callers cannot reach the stored records.
type static[R any] struct {
	items []R
	clone func(R) R
}

func (p static[R]) FetchRecords(_ context.Context) ([]R, error) {
	out := make([]R, len(p.items))
	for i, it := range p.items {
		out[i] = p.clone(it)
	}
	return out, nil
}
