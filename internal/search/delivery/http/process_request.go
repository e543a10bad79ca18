package http

import (
	"encoding/json"
	"strings"

	"search-srv/internal/model"
	"search-srv/internal/search"
	pkgErrors "search-srv/pkg/errors"
	"search-srv/pkg/scope"
	"search-srv/pkg/util"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSearchRequest(c *gin.Context) (searchReq, model.Scope, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, errInvalidRequest.WithDetails(err.Error())
	}
	if err := checkLimit(req.Limit); err != nil {
		return req, model.Scope{}, h.mapError(err)
	}

	var fieldErrs pkgErrors.ValidationErrors
	var err error
	if req.dateFrom, err = util.ParseOptionalISOTime(req.DateFrom); err != nil {
		fieldErrs = append(fieldErrs, pkgErrors.ValidationError{Field: "dateFrom", Message: "must be an ISO 8601 date or timestamp"})
	}
	if req.dateTo, err = util.ParseOptionalISOTime(req.DateTo); err != nil {
		fieldErrs = append(fieldErrs, pkgErrors.ValidationError{Field: "dateTo", Message: "must be an ISO 8601 date or timestamp"})
	}
	if len(fieldErrs) > 0 {
		return req, model.Scope{}, errInvalidQuery.WithDetails(fieldErrs)
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processSuggestRequest(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidRequest.WithDetails(err.Error())
	}
	if err := checkLimit(req.Limit); err != nil {
		return req, h.mapError(err)
	}
	return req, nil
}

func (h *handler) processTrendingRequest(c *gin.Context) (trendingReq, error) {
	var req trendingReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidRequest.WithDetails(err.Error())
	}
	if err := checkLimit(req.Limit); err != nil {
		return req, h.mapError(err)
	}
	return req, nil
}

func (h *handler) processTrackRequest(c *gin.Context) (trackReq, model.Scope, error) {
	var req trackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, errInvalidRequest.WithDetails(err.Error())
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

// checkLimit rejects an explicit limit below 1. Upper bounds are per operation and checked by the usecase.
func checkLimit(limit *int) error {
	if limit != nil && *limit < 1 {
		return search.ErrInvalidPagination
	}
	return nil
}

// resultID accepts both JSON strings and numbers, since entity ids are numeric
// but clients echo them back as they received them.
type resultID string

func (r *resultID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*r = resultID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = resultID(strings.TrimSpace(s))
	return nil
}
