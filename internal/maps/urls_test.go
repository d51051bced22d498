package maps

import (
	"strings"
	"testing"

	"wayfind/internal/geo"
	"wayfind/internal/types"
)

var (
	pointA = types.Point{Lat: 17.4239, Lng: 78.4738}
	pointB = types.Point{Lat: 17.385, Lng: 78.4867}
)

func TestLocationURL(t *testing.T) {
	got := LocationURL(pointB)
	want := "https://www.google.com/maps?q=17.385,78.4867"
	if got != want {
		t.Errorf("LocationURL = %q, want %q", got, want)
	}
}

func TestDirectionsURL_ContainsBothCoordinatePairs(t *testing.T) {
	got := DirectionsURL(pointA, pointB)

	if !strings.HasPrefix(got, "https://www.google.com/maps/dir/?api=1") {
		t.Errorf("unexpected prefix: %q", got)
	}
	for _, part := range []string{
		"origin=17.4239,78.4738",
		"destination=17.385,78.4867",
		"travelmode=driving",
	} {
		if !strings.Contains(got, part) {
			t.Errorf("DirectionsURL missing %q: %q", part, got)
		}
	}
}

func TestOSMDirectionsURL(t *testing.T) {
	got := OSMDirectionsURL(pointA, pointB)
	want := "https://www.openstreetmap.org/directions?engine=fossgis_osrm_car&route=17.4239,78.4738;17.385,78.4867"
	if got != want {
		t.Errorf("OSMDirectionsURL = %q, want %q", got, want)
	}
}

func TestOSMLocationURL(t *testing.T) {
	got := OSMLocationURL(pointB)
	want := "https://www.openstreetmap.org/?mlat=17.385&mlon=78.4867&zoom=14"
	if got != want {
		t.Errorf("OSMLocationURL = %q, want %q", got, want)
	}
}

func TestEmbedURL(t *testing.T) {
	e := Embed{
		Bounds:  geo.Bounds{MinLat: 17.375, MaxLat: 17.434, MinLng: 78.464, MaxLng: 78.497},
		Markers: []types.Point{pointA, pointB},
	}
	got := EmbedURL(e)

	if !strings.Contains(got, "bbox=78.464,17.375,78.497,17.434") {
		t.Errorf("embed bbox wrong (lng,lat order expected): %q", got)
	}
	if strings.Count(got, "&marker=") != 2 {
		t.Errorf("expected two markers: %q", got)
	}
	if !strings.Contains(got, "layer=mapnik") {
		t.Errorf("expected mapnik layer: %q", got)
	}
}
