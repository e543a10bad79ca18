package search

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// ErrInvalidQuery is the parent of every request validation error.
	ErrInvalidQuery = errors.New("search: invalid query")

	ErrQueryTooShort     = fmt.Errorf("%w: query too short", ErrInvalidQuery)
	ErrQueryTooLong      = fmt.Errorf("%w: query too long", ErrInvalidQuery)
	ErrUnknownEntityType = fmt.Errorf("%w: unknown entity type", ErrInvalidQuery)
	ErrInvalidPagination = fmt.Errorf("%w: limit or offset out of range", ErrInvalidQuery)
	ErrInvalidDateRange  = fmt.Errorf("%w: dateFrom is after dateTo", ErrInvalidQuery)
	ErrInvalidTrackInput = fmt.Errorf("%w: invalid click-through payload", ErrInvalidQuery)

	// ErrBackend - a lookup against the data store failed
	ErrBackend = errors.New("search: backend lookup failed")
)
