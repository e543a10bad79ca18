package http

import (
	"errors"
	"net/http"

	"search-srv/internal/search"
	pkgErrors "search-srv/pkg/errors"
)

var (
	errInvalidRequest = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid request",
	)
	errInvalidQuery = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid search query",
	)
	errSearchFailed = pkgErrors.NewHTTPError(
		http.StatusInternalServerError, "Search failed",
	)
)

// fieldErrors names the request field behind each validation error.
var fieldErrors = []struct {
	err   error
	field string
	msg   string
}{
	{search.ErrQueryTooShort, "q", "must be at least 2 characters"},
	{search.ErrQueryTooLong, "q", "must be at most 500 characters"},
	{search.ErrUnknownEntityType, "type", "must be one of user, post, event, group, memory"},
	{search.ErrInvalidPagination, "limit", "limit or offset out of range"},
	{search.ErrInvalidDateRange, "dateFrom", "must not be after dateTo"},
	{search.ErrInvalidTrackInput, "body", "query and resultId are required and position must not be negative"},
}

func (h *handler) mapError(err error) error {
	for _, fe := range fieldErrors {
		if errors.Is(err, fe.err) {
			return errInvalidQuery.WithDetails(pkgErrors.ValidationErrors{{Field: fe.field, Message: fe.msg}})
		}
	}

	if errors.Is(err, search.ErrInvalidQuery) {
		return errInvalidQuery.WithDetails(err.Error())
	}
	// ErrBackend and anything unexpected; details only leave the process in debug mode
	return errSearchFailed.WithDetails(err.Error())
}
