// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfind/internal/http/handlers"
	"wayfind/internal/http/middleware"
	"wayfind/internal/modules/history"
	"wayfind/internal/modules/location"
	"wayfind/internal/modules/navigation"
	"wayfind/internal/modules/search"
)

type RouterDeps struct {
	Locations  *location.Service
	History    *history.Service
	Index      *location.Index
	SearchCfg  search.Config
	Geocoder   search.Geocoder
	Directions navigation.Directions
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	locationHandler := handlers.NewLocationHandler(deps.Locations)
	r.GET("/api/locations", locationHandler.List)
	r.GET("/api/locations/search", locationHandler.Search)
	r.GET("/api/locations/:id", locationHandler.Get)
	r.GET("/api/locations/:id/coordinates", locationHandler.Coordinates)
	r.POST("/api/customers/location", locationHandler.SaveCustomerLocation)

	searchHandler := handlers.NewSearchHandler(deps.SearchCfg, deps.Index, deps.Geocoder)
	r.GET("/api/search", searchHandler.Suggest)

	routeHandler := handlers.NewRouteHandler(deps.Directions)
	r.GET("/api/routes/directions", routeHandler.Directions)
	r.GET("/api/routes/links", routeHandler.Links)

	historyHandler := handlers.NewHistoryHandler(deps.History)
	r.GET("/api/history", historyHandler.List)
	r.POST("/api/history", historyHandler.Record)
	r.GET("/api/history/:id", historyHandler.Get)
	r.DELETE("/api/history", historyHandler.Clear)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
