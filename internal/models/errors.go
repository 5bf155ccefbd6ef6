package models

import (
	"errors"
)

var (
	ErrInvalidQuery        = errors.New("models: invalid query")
	ErrCatalogUnavailable  = errors.New("models: catalog unavailable")
	ErrListingNotFound     = errors.New("models: listing not found")
	ErrFavoriteWriteFailed = errors.New("models: favorite write failed")
)
