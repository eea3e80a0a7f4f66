package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker reports whether a catalog has been loaded.
type CatalogChecker interface {
	Loaded(ctx context.Context) (bool, error)
}
