package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/campushub/internal/domain"
	"github.com/kailas-cloud/campushub/internal/domain/kind"
	domlisting "github.com/kailas-cloud/campushub/internal/domain/listing"
)

// Page is the visible subset of a catalog under one filter state.
type Page[R any] struct {
	Items []R
	Count int
	Total int
	State domlisting.State
}

// TagCount is a tag and the number of records carrying it.
type TagCount struct {
	Tag   string
	Count int
}

// TagSummary describes the chips a catalog can be filtered by.
type TagSummary struct {
	Popular []string
	All     []TagCount
}

// Service browses one catalog.
type Service[R any] struct {
	kind      kind.Kind
	provider  Provider[R]
	extractor domlisting.Extractor[R]
	popular   []string
	recorder  Recorder
}

// New creates a listing service for kind k.
func New[R any](k kind.Kind, provider Provider[R], extractor domlisting.Extractor[R]) *Service[R] {
	return &Service[R]{kind: k, provider: provider, extractor: extractor}
}

// WithPopular sets the suggested filter chips.
func (s *Service[R]) WithPopular(tags []string) *Service[R] {
	s.popular = append([]string(nil), tags...)
	return s
}

// WithRecorder attaches a metrics recorder.
func (s *Service[R]) WithRecorder(r Recorder) *Service[R] {
	s.recorder = r
	return s
}

// Kind returns the catalog served.
func (s *Service[R]) Kind() kind.Kind { return s.kind }

// Extractor returns the record extractor used for matching.
func (s *Service[R]) Extractor() domlisting.Extractor[R] { return s.extractor }

// fetch loads the collection. A catalog that was never loaded is an empty collection.
func (s *Service[R]) fetch(ctx context.Context) ([]R, error) {
	items, err := s.provider.FetchRecords(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogEmpty) {
			return []R{}, nil
		}
		return nil, fmt.Errorf("fetch %s: %w", s.kind, err)
	}
	return items, nil
}

// Browse returns the records visible under state, in catalog order.
func (s *Service[R]) Browse(ctx context.Context, state domlisting.State) (Page[R], error) {
	items, err := s.fetch(ctx)
	if err != nil {
		return Page[R]{}, err
	}

	visible := domlisting.Visible(items, s.extractor, state)
	if s.recorder != nil {
		s.recorder.ObserveBrowse(string(s.kind), !state.IsEmpty(), len(visible))
	}

	return Page[R]{
		Items: visible,
		Count: len(visible),
		Total: len(items),
		State: state,
	}, nil
}

// Get returns the record with the given id. Providers implementing Getter
// answer the lookup themselves; others are scanned.
func (s *Service[R]) Get(ctx context.Context, id string) (R, error) {
	var zero R
	if g, ok := s.provider.(Getter[R]); ok {
		it, err := g.Get(ctx, id)
		switch {
		case err == nil:
			return it, nil
		case errors.Is(err, domain.ErrNotFound):
			return zero, err
		case errors.Is(err, domain.ErrCatalogEmpty):
			return zero, fmt.Errorf("%s %q: %w", s.kind, id, domain.ErrNotFound)
		default:
			return zero, fmt.Errorf("get %s %q: %w", s.kind, id, err)
		}
	}

	items, err := s.fetch(ctx)
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if s.extractor.ID(it) == id {
			return it, nil
		}
	}
	return zero, fmt.Errorf("%s %q: %w", s.kind, id, domain.ErrNotFound)
}

// Tags summarizes the catalog's tags in first-seen order with record counts.
func (s *Service[R]) Tags(ctx context.Context) (TagSummary, error) {
	items, err := s.fetch(ctx)
	if err != nil {
		return TagSummary{}, err
	}

	index := make(map[string]int)
	all := make([]TagCount, 0)
	for _, it := range items {
		for _, t := range s.extractor.Tags(it) {
			i, ok := index[t]
			if !ok {
				i = len(all)
				index[t] = i
				all = append(all, TagCount{Tag: t})
			}
			all[i].Count++
		}
	}

	popular := s.popular
	if popular == nil {
		popular = []string{}
	}
	return TagSummary{Popular: popular, All: all}, nil
}
