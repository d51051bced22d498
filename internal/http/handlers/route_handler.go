// README: Route handlers: driving directions and shareable map links.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfind/internal/geo"
	"wayfind/internal/maps"
	"wayfind/internal/modules/navigation"
	"wayfind/internal/types"
)

type RouteHandler struct {
	directions navigation.Directions
}

func NewRouteHandler(directions navigation.Directions) *RouteHandler {
	return &RouteHandler{directions: directions}
}

// Directions fetches a driving route between two points and returns the
// steps alongside the external map links for the same pair.
func (h *RouteHandler) Directions(c *gin.Context) {
	origin, dest, ok := parseEndpoints(c)
	if !ok {
		return
	}

	route, err := h.directions.Route(c.Request.Context(), origin, dest)
	if errors.Is(err, maps.ErrNoRoute) {
		writeError(c, http.StatusNotFound, "no route between the given points")
		return
	}
	if err != nil {
		writeError(c, http.StatusBadGateway, "routing provider unavailable")
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"distanceKm":       route.DistanceKm,
		"durationSec":      route.DurationSec,
		"steps":            route.Steps,
		"straightLineKm":   geo.DistanceKm(origin.Lat, origin.Lng, dest.Lat, dest.Lng),
		"googleMapsUrl":    maps.DirectionsURL(origin, dest),
		"osmDirectionsUrl": maps.OSMDirectionsURL(origin, dest),
	})
}

// Links returns the external map links without touching any provider.
func (h *RouteHandler) Links(c *gin.Context) {
	origin, dest, ok := parseEndpoints(c)
	if !ok {
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"straightLineKm":   geo.DistanceKm(origin.Lat, origin.Lng, dest.Lat, dest.Lng),
		"googleMapsUrl":    maps.DirectionsURL(origin, dest),
		"osmDirectionsUrl": maps.OSMDirectionsURL(origin, dest),
	})
}

func parseEndpoints(c *gin.Context) (types.Point, types.Point, bool) {
	vals := make([]float64, 4)
	for i, key := range []string{"originLat", "originLng", "destLat", "destLng"} {
		v, err := strconv.ParseFloat(c.Query(key), 64)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid or missing parameter "+key)
			return types.Point{}, types.Point{}, false
		}
		vals[i] = v
	}
	return types.Point{Lat: vals[0], Lng: vals[1]}, types.Point{Lat: vals[2], Lng: vals[3]}, true
}
