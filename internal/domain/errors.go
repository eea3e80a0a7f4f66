package domain

import "errors"

var (
	// ErrNotFound signals a missing record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRecord signals a record that failed validation.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrUnknownKind signals a catalog kind that is not served.
	ErrUnknownKind = errors.New("unknown catalog kind")
	// ErrCatalogEmpty signals a catalog that has never been loaded.
	ErrCatalogEmpty = errors.New("catalog is empty")
	// ErrInvalidAction signals an unsupported filter action.
	ErrInvalidAction = errors.New("invalid filter action")
)
