// README: Route display state: selected location, start/end endpoints, map view derivation.
package route

import (
	"errors"
	"sync"

	"wayfind/internal/geo"
	"wayfind/internal/maps"
	"wayfind/internal/modules/location"
	"wayfind/internal/types"
)

// ErrNoSelection is returned when SetStart/SetEnd is called before any
// location has been selected.
var ErrNoSelection = errors.New("route: no location selected")

// MapView names what the embedded map should currently show.
type MapView string

const (
	ViewNone      MapView = "none"
	ViewSinglePin MapView = "single_pin"
	ViewDualPin   MapView = "dual_pin"
	ViewRoute     MapView = "route"
)

// dualPinMargin pads the bounding box around the two endpoints so both
// markers render with some breathing room.
const dualPinMargin = 0.01

// Snapshot is an immutable view of the route state, with everything the
// display layer needs derived up front.
type Snapshot struct {
	Selected *location.Location `json:"selected,omitempty"`
	Start    *location.Location `json:"start,omitempty"`
	End      *location.Location `json:"end,omitempty"`

	View                MapView `json:"view"`
	DistanceKm          float64 `json:"distanceKm"`
	HasDistance         bool    `json:"hasDistance"`
	DirectionsAvailable bool    `json:"directionsAvailable"`

	EmbedURL         string `json:"embedUrl,omitempty"`
	LocationURL      string `json:"locationUrl,omitempty"`
	DirectionsURL    string `json:"directionsUrl,omitempty"`
	OSMDirectionsURL string `json:"osmDirectionsUrl,omitempty"`
}

// Listener receives a snapshot after every state change.
type Listener func(Snapshot)

// State owns the current selection and endpoints for one session. All
// mutation goes through its methods; callers never reach the fields.
type State struct {
	mu             sync.Mutex
	selected       *location.Location
	start          *location.Location
	end            *location.Location
	routeRequested bool
	listener       Listener
}

func NewState(listener Listener) *State {
	return &State{listener: listener}
}

// Select records a location as the current selection. Ranges are
// back-filled so the single-pin embed always has a box to draw.
func (s *State) Select(loc location.Location) {
	loc.EnsureRanges()

	s.mu.Lock()
	s.selected = &loc
	s.mu.Unlock()
	s.notify()
}

// SetStart promotes the current selection to the route's start point.
func (s *State) SetStart() error {
	s.mu.Lock()
	if s.selected == nil {
		s.mu.Unlock()
		return ErrNoSelection
	}
	loc := *s.selected
	s.start = &loc
	s.routeRequested = false
	s.mu.Unlock()
	s.notify()
	return nil
}

// SetEnd promotes the current selection to the route's end point.
func (s *State) SetEnd() error {
	s.mu.Lock()
	if s.selected == nil {
		s.mu.Unlock()
		return ErrNoSelection
	}
	loc := *s.selected
	s.end = &loc
	s.routeRequested = false
	s.mu.Unlock()
	s.notify()
	return nil
}

// RequestRouteView switches the map to the route view. Both endpoints
// must be set.
func (s *State) RequestRouteView() error {
	s.mu.Lock()
	if s.start == nil || s.end == nil {
		s.mu.Unlock()
		return ErrNoSelection
	}
	s.routeRequested = true
	s.mu.Unlock()
	s.notify()
	return nil
}

// Reset clears selection, endpoints, and any requested route view.
func (s *State) Reset() {
	s.mu.Lock()
	s.selected = nil
	s.start = nil
	s.end = nil
	s.routeRequested = false
	s.mu.Unlock()
	s.notify()
}

// Snapshot derives the current display state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *State) notify() {
	if s.listener == nil {
		return
	}
	s.mu.Lock()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.listener(snap)
}

func (s *State) snapshotLocked() Snapshot {
	snap := Snapshot{
		Selected: copyLoc(s.selected),
		Start:    copyLoc(s.start),
		End:      copyLoc(s.end),
		View:     ViewNone,
	}

	if s.start != nil && s.end != nil {
		snap.DistanceKm = geo.DistanceKm(
			s.start.Latitude, s.start.Longitude,
			s.end.Latitude, s.end.Longitude,
		)
		snap.HasDistance = true
		snap.DirectionsAvailable = true
		snap.DirectionsURL = maps.DirectionsURL(s.start.Point(), s.end.Point())
		snap.OSMDirectionsURL = maps.OSMDirectionsURL(s.start.Point(), s.end.Point())

		if s.routeRequested {
			snap.View = ViewRoute
		} else {
			snap.View = ViewDualPin
		}
		snap.EmbedURL = maps.EmbedURL(dualEmbed(*s.start, *s.end))
		return snap
	}

	if pin := s.pinLocked(); pin != nil {
		snap.View = ViewSinglePin
		snap.EmbedURL = maps.EmbedURL(singleEmbed(*pin))
		snap.LocationURL = maps.LocationURL(pin.Point())
	}
	return snap
}

// pinLocked picks the location the single-pin view should centre on:
// the current selection, otherwise whichever endpoint is set.
func (s *State) pinLocked() *location.Location {
	switch {
	case s.selected != nil:
		return s.selected
	case s.start != nil:
		return s.start
	default:
		return s.end
	}
}

// singleEmbed frames one location using its coordinate ranges.
func singleEmbed(loc location.Location) maps.Embed {
	loc.EnsureRanges()
	return maps.Embed{
		Bounds: geo.Bounds{
			MinLat: loc.LatitudeRange.Min,
			MaxLat: loc.LatitudeRange.Max,
			MinLng: loc.LongitudeRange.Min,
			MaxLng: loc.LongitudeRange.Max,
		},
		Markers: []types.Point{loc.Point()},
	}
}

// dualEmbed frames both endpoints with a margin so neither marker sits on
// the edge of the box.
func dualEmbed(start, end location.Location) maps.Embed {
	bounds := geo.BoxAround(start.Latitude, start.Longitude, 0).
		Union(geo.BoxAround(end.Latitude, end.Longitude, 0)).
		Expand(dualPinMargin)
	return maps.Embed{
		Bounds:  bounds,
		Markers: []types.Point{start.Point(), end.Point()},
	}
}

func copyLoc(loc *location.Location) *location.Location {
	if loc == nil {
		return nil
	}
	out := *loc
	return &out
}
