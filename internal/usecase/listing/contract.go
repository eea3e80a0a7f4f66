package listing

import "context"

// Provider supplies the full, ordered record collection of one catalog.
type Provider[R any] interface {
	FetchRecords(ctx context.Context) ([]R, error)
}

// Getter is implemented by providers that look up one record by id.
// Get reports domain.ErrNotFound for a missing id and domain.ErrCatalogEmpty
// for a catalog that was never loaded.
type Getter[R any] interface {
	Get(ctx context.Context, id string) (R, error)
}

// Recorder observes Browse outcomes (metrics).
type Recorder interface {
	ObserveBrowse(kind string, filtered bool, visible int)
}
