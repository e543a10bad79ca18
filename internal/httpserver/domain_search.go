package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"search-srv/internal/middleware"
	"search-srv/internal/search"
	searchHTTP "search-srv/internal/search/delivery/http"
	searchProducer "search-srv/internal/search/delivery/kafka/producer"
	searchPostgre "search-srv/internal/search/repository/postgre"
	searchRedis "search-srv/internal/search/repository/redis"
	searchUsecase "search-srv/internal/search/usecase"
)

func (srv *HTTPServer) setupSearchDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := searchPostgre.New(srv.postgresDB, srv.l)

	cacheRepo := searchRedis.New(srv.redisClient, srv.l, searchRedis.Config{
		SuggestionTTL: srv.searchConfig.SuggestionCacheTTL,
		TrendingTTL:   srv.searchConfig.TrendingCacheTTL,
	})

	var clicks search.ClickPublisher
	if srv.kafkaProducer != nil {
		clicks = searchProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := searchUsecase.New(repo, cacheRepo, clicks, srv.l, searchUsecase.Config{
		DefaultLimit:    srv.searchConfig.DefaultLimit,
		MaxLimit:        srv.searchConfig.MaxLimit,
		LookupTimeout:   srv.searchConfig.LookupTimeout,
		TrackingTimeout: srv.searchConfig.TrackingTimeout,
		TrendingWindow:  srv.searchConfig.TrendingWindow,
		IsolateFailures: srv.searchConfig.IsolateFailures,
	})
	srv.searchUC = uc

	handler := searchHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Search domain registered (click publishing: %v, isolate failures: %v)",
		clicks != nil, srv.searchConfig.IsolateFailures)
	return nil
}
