package campushub

import "github.com/kailas-cloud/campushub/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound      = domain.ErrNotFound
	ErrInvalidRecord = domain.ErrInvalidRecord
	ErrUnknownKind   = domain.ErrUnknownKind
	ErrCatalogEmpty  = domain.ErrCatalogEmpty
	ErrInvalidAction = domain.ErrInvalidAction
)
