package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/campushub/internal/db"
	"github.com/kailas-cloud/campushub/internal/domain/kind"
)

// target is the slice of a catalog repository the loader needs.
type target[R any] interface {
	Kind() kind.Kind
	Loaded(ctx context.Context) (bool, error)
	Encode(items []R) (db.SetItem, error)
	Drop(ctx context.Context) error
}

// writer persists encoded catalogs in one round trip.
type writer interface {
	SetMulti(ctx context.Context, items []db.SetItem) error
}

// Entry binds a catalog repository to the records it should be seeded with.
type Entry struct {
	kind   kind.Kind
	count  int
	loaded func(ctx context.Context) (bool, error)
	encode func() (db.SetItem, error)
	drop   func(ctx context.Context) error
}

// For creates an Entry seeding t with items.
func For[R any](t target[R], items []R) Entry {
	return Entry{
		kind:   t.Kind(),
		count:  len(items),
		loaded: t.Loaded,
		encode: func() (db.SetItem, error) { return t.Encode(items) },
		drop:   t.Drop,
	}
}

// Report lists how many records were written per catalog.
// Catalogs that were already loaded and not forced are absent.
type Report map[kind.Kind]int

// Loader writes reference catalogs into storage.
type Loader struct {
	store   writer
	entries []Entry
	logger  *zap.Logger
}

// NewLoader creates a Loader. logger may be nil.
func NewLoader(store writer, logger *zap.Logger, entries ...Entry) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{store: store, entries: entries, logger: logger}
}

// Load writes every catalog that is not loaded yet, or all of them when force is set.
func (l *Loader) Load(ctx context.Context, force bool) (Report, error) {
	report := make(Report, len(l.entries))
	items := make([]db.SetItem, 0, len(l.entries))

	for _, e := range l.entries {
		if !force {
			loaded, err := e.loaded(ctx)
			if err != nil {
				return nil, fmt.Errorf("check %s: %w", e.kind, err)
			}
			if loaded {
				l.logger.Debug("Catalog already loaded", zap.String("kind", e.kind.String()))
				continue
			}
		}
		item, err := e.encode()
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", e.kind, err)
		}
		items = append(items, item)
		report[e.kind] = e.count
	}

	if err := l.store.SetMulti(ctx, items); err != nil {
		return nil, fmt.Errorf("write catalogs: %w", err)
	}

	for k, n := range report {
		l.logger.Info("Catalog seeded", zap.String("kind", k.String()), zap.Int("records", n))
	}
	return report, nil
}

// Clear deletes every catalog. Already missing catalogs are not an error.
func (l *Loader) Clear(ctx context.Context) ([]kind.Kind, error) {
	cleared := make([]kind.Kind, 0, len(l.entries))
	for _, e := range l.entries {
		if err := e.drop(ctx); err != nil {
			return cleared, fmt.Errorf("clear %s: %w", e.kind, err)
		}
		cleared = append(cleared, e.kind)
		l.logger.Info("Catalog cleared", zap.String("kind", e.kind.String()))
	}
	return cleared, nil
}
