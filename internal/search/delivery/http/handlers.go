package http

import (
	"search-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Search - Universal search across people, posts, events, groups and memories
// @Summary Universal search
// @Description Searches every entity type (or the ones listed in type[]), ranks hits by textual relevance and returns one page of the merged list
// @Tags Search
// @Produce json
// @Param q query string true "Search text (min 2 characters)"
// @Param type[] query []string false "Entity types: user, post, event, group, memory" collectionFormat(multi)
// @Param limit query int false "Page size 1-50" default(20)
// @Param offset query int false "Offset into the merged list" default(0)
// @Param dateFrom query string false "Events starting at or after (ISO 8601)"
// @Param dateTo query string false "Events starting at or before (ISO 8601)"
// @Param location query string false "Event location text"
// @Success 200 {object} searchResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /search/all [get]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processSearchRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "search.delivery.http.Search: processSearchRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.Search(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Search: usecase Search failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	// 3. Return response
	response.OK(c, h.newSearchResp(output))
}

// Suggest - Autocomplete suggestions
// @Summary Search suggestions
// @Description Returns trending queries, person names and group names starting with q
// @Tags Search
// @Produce json
// @Param q query string true "Prefix (min 2 characters)"
// @Param limit query int false "Max suggestions 1-20" default(10)
// @Success 200 {object} suggestResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /search/suggestions [get]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "search.delivery.http.Suggest: processSuggestRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	suggestions, err := h.uc.Suggest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Suggest: usecase Suggest failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSuggestResp(suggestions))
}

// Trending - Most searched queries of the last 7 days
// @Summary Trending searches
// @Tags Search
// @Produce json
// @Param limit query int false "Max entries 1-50" default(10)
// @Param category query string false "Category" default(all)
// @Success 200 {object} trendingResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /search/trending [get]
func (h *handler) Trending(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTrendingRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "search.delivery.http.Trending: processTrendingRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	items, err := h.uc.Trending(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Trending: usecase Trending failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTrendingResp(items))
}

// Track - Record a click on a search result
// @Summary Track result click
// @Tags Search
// @Accept json
// @Produce json
// @Param body body trackReq true "Click-through"
// @Success 200 {object} trackResp
// @Failure 400 {object} response.Resp
// @Router /search/track [post]
func (h *handler) Track(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processTrackRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "search.delivery.http.Track: processTrackRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Track(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Track: usecase Track failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, trackResp{Success: true})
}
