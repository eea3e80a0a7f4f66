package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/campushub/internal/db"
	"github.com/kailas-cloud/campushub/internal/domain"
	"github.com/kailas-cloud/campushub/internal/domain/kind"
)

// DefaultKeyPrefix namespaces every catalog key.
const DefaultKeyPrefix = "campushub:"

// store is the consumer interface for catalogs (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Repo persists one ordered catalog as a JSON array under a single key.
// R is the domain record, D its JSON row.
type Repo[R, D any] struct {
	store   store
	kind    kind.Kind
	prefix  string
	id      func(R) string
	toRow   func(R) D
	fromRow func(D) R
}

func newRepo[R, D any](
	s store, k kind.Kind, id func(R) string, toRow func(R) D, fromRow func(D) R,
) *Repo[R, D] {
	return &Repo[R, D]{
		store: s, kind: k, prefix: DefaultKeyPrefix,
		id: id, toRow: toRow, fromRow: fromRow,
	}
}

// WithKeyPrefix overrides the key namespace.
func (r *Repo[R, D]) WithKeyPrefix(prefix string) *Repo[R, D] {
	if prefix != "" {
		r.prefix = prefix
	}
	return r
}

// Kind returns the catalog this repository serves.
func (r *Repo[R, D]) Kind() kind.Kind { return r.kind }

// Key returns the storage key of the catalog.
func (r *Repo[R, D]) Key() string { return r.prefix + "catalog:" + string(r.kind) }

// FetchRecords loads the whole catalog in stored order.
// A catalog that was never written yields domain.ErrCatalogEmpty.
func (r *Repo[R, D]) FetchRecords(ctx context.Context) ([]R, error) {
	data, err := r.store.Get(ctx, r.Key())
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("%s: %w", r.kind, domain.ErrCatalogEmpty)
		}
		return nil, fmt.Errorf("get %s: %w", r.kind, err)
	}

	var rows []D
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", r.kind, err)
	}
	items := make([]R, len(rows))
	for i, row := range rows {
		items[i] = r.fromRow(row)
	}
	return items, nil
}

// Get returns a single record by id. It implements the listing Getter.
func (r *Repo[R, D]) Get(ctx context.Context, id string) (R, error) {
	var zero R
	items, err := r.FetchRecords(ctx)
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if r.id(it) == id {
			return it, nil
		}
	}
	return zero, fmt.Errorf("%s %q: %w", r.kind, id, domain.ErrNotFound)
}

// Loaded reports whether the catalog has been written.
func (r *Repo[R, D]) Loaded(ctx context.Context) (bool, error) {
	ok, err := r.store.Exists(ctx, r.Key())
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", r.kind, err)
	}
	return ok, nil
}

// Encode serializes items into a pipelinable SET. IDs must be unique.
func (r *Repo[R, D]) Encode(items []R) (db.SetItem, error) {
	seen := make(map[string]struct{}, len(items))
	rows := make([]D, len(items))
	for i, it := range items {
		id := r.id(it)
		if _, dup := seen[id]; dup {
			return db.SetItem{}, fmt.Errorf("%w: duplicate %s id %q", domain.ErrInvalidRecord, r.kind, id)
		}
		seen[id] = struct{}{}
		rows[i] = r.toRow(it)
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return db.SetItem{}, fmt.Errorf("marshal %s: %w", r.kind, err)
	}
	return db.SetItem{Key: r.Key(), Value: data}, nil
}

// Replace overwrites the whole catalog, keeping the given order.
func (r *Repo[R, D]) Replace(ctx context.Context, items []R) error {
	item, err := r.Encode(items)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, item.Key, item.Value); err != nil {
		return fmt.Errorf("set %s: %w", r.kind, err)
	}
	return nil
}

// Drop deletes the catalog.
func (r *Repo[R, D]) Drop(ctx context.Context) error {
	if err := r.store.Del(ctx, r.Key()); err != nil {
		return fmt.Errorf("del %s: %w", r.kind, err)
	}
	return nil
}
