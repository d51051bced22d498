// README: External map/direction link formatting. Pure string construction, no network.
package maps

import (
	"strconv"
	"strings"

	"wayfind/internal/geo"
	"wayfind/internal/types"
)

// Embed describes what the embedded map should render: a bounding box and
// one or two markers.
type Embed struct {
	Bounds  geo.Bounds
	Markers []types.Point
}

// LocationURL returns a shareable Google Maps link pinning a single point.
func LocationURL(p types.Point) string {
	return "https://www.google.com/maps?q=" + pair(p)
}

// DirectionsURL returns a Google Maps directions link from origin to dest
// in driving mode.
func DirectionsURL(origin, dest types.Point) string {
	return "https://www.google.com/maps/dir/?api=1" +
		"&origin=" + pair(origin) +
		"&destination=" + pair(dest) +
		"&travelmode=driving"
}

// OSMLocationURL returns an OpenStreetMap link centred on a single point.
func OSMLocationURL(p types.Point) string {
	return "https://www.openstreetmap.org/?mlat=" + coord(p.Lat) +
		"&mlon=" + coord(p.Lng) + "&zoom=14"
}

// OSMDirectionsURL returns an OpenStreetMap directions link with
// turn-by-turn instructions using the OSRM car engine.
func OSMDirectionsURL(origin, dest types.Point) string {
	return "https://www.openstreetmap.org/directions?engine=fossgis_osrm_car&route=" +
		pair(origin) + ";" + pair(dest)
}

// EmbedURL renders the Embed descriptor as an OpenStreetMap embed URL with
// the mapnik layer and one marker parameter per marker.
func EmbedURL(e Embed) string {
	var sb strings.Builder
	sb.WriteString("https://www.openstreetmap.org/export/embed.html?bbox=")
	sb.WriteString(coord(e.Bounds.MinLng))
	sb.WriteString(",")
	sb.WriteString(coord(e.Bounds.MinLat))
	sb.WriteString(",")
	sb.WriteString(coord(e.Bounds.MaxLng))
	sb.WriteString(",")
	sb.WriteString(coord(e.Bounds.MaxLat))
	sb.WriteString("&layer=mapnik")
	for _, m := range e.Markers {
		sb.WriteString("&marker=")
		sb.WriteString(pair(m))
	}
	return sb.String()
}

func pair(p types.Point) string {
	return coord(p.Lat) + "," + coord(p.Lng)
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
