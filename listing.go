package campushub

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/campushub/internal/domain"
	"github.com/kailas-cloud/campushub/internal/domain/kind"
)

// ListingOption configures NewListing.
type ListingOption func(*listingConfig)

type listingConfig struct {
	name    string
	popular []string
}

// Named sets the listing name used in errors, logs and metrics.
// Defaults to the lower-cased struct name.
func Named(name string) ListingOption {
	return func(c *listingConfig) { c.name = name }
}

// WithPopular sets the suggested chips returned by Tags.
func WithPopular(tags ...string) ListingOption {
	return func(c *listingConfig) { c.popular = append([]string(nil), tags...) }
}

// NewListing creates an in-memory catalog over caller-defined records.
// T must be a struct (or pointer to struct) with campushub tags:
//
//	ID    string   `campushub:"id,id"`        // required, unique
//	Title string   `campushub:"title,search"` // string or []string, matched by substring
//	Tags  []string `campushub:"tags,tags"`    // string or []string, matched exactly
//
// The schema is parsed once. Records are copied on the way in and on the way
// out: for pointer T the pointee is copied, and the []string fields tagged
// search or tags are cloned. Changing items, or a record returned by the
// listing, does not change what the listing holds. Untagged reference fields
// (maps, nested pointers) are shared.
func NewListing[T any](items []T, opts ...ListingOption) (*Catalog[T], error) {
	meta, err := parseSchema[T]()
	if err != nil {
		return nil, fmt.Errorf("new listing: %w", err)
	}

	cfg := listingConfig{name: strings.ToLower(meta.typ.Name())}
	for _, o := range opts {
		o(&cfg)
	}

	ex := extractorFor[T](meta)
	clone := clonerFor[T](meta)
	snapshot := static[T]{items: make([]T, len(items)), clone: clone}
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		it = clone(it)
		snapshot.items[i] = it
		id := ex.ID(it)
		if id == "" {
			return nil, fmt.Errorf("new listing: item %d: %w: empty id", i, domain.ErrInvalidRecord)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("new listing: item %d: %w: duplicate id %q", i, domain.ErrInvalidRecord, id)
		}
		seen[id] = struct{}{}
	}

	return newCatalog[T](kind.Kind(cfg.name), snapshot, ex, cfg.popular, nil), nil
}
