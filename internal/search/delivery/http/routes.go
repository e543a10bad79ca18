package http

import (
	"search-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	g := r.Group("/search")
	g.Use(mw.OptionalAuth())
	{
		g.GET("/all", h.Search)
		g.GET("/suggestions", h.Suggest)
		g.GET("/trending", h.Trending)
		g.POST("/track", h.Track)
	}
}
