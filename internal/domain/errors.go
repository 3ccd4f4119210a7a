package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrUnavailable    = errors.New("unavailable")
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrInvalidRecord  = errors.New("invalid record")
)
