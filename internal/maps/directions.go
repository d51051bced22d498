// README: Turn-by-turn routing port shared by the OSRM and Google adapters.
package maps

import (
	"context"
	"errors"

	"wayfind/internal/types"
)

// ErrNoRoute indicates the provider answered but found no route between
// the two points.
var ErrNoRoute = errors.New("no route found")

// RouteStep is one turn-by-turn instruction.
type RouteStep struct {
	Instruction string  `json:"instruction"`
	DistanceKm  float64 `json:"distanceKm"`
	DurationSec float64 `json:"durationSec"`
	Maneuver    string  `json:"maneuver,omitempty"`
}

// Route is a driving route between two points.
type Route struct {
	DistanceKm  float64     `json:"distanceKm"`
	DurationSec float64     `json:"durationSec"`
	Steps       []RouteStep `json:"steps"`
}

// DirectionsProvider computes a driving route between two coordinate pairs.
type DirectionsProvider interface {
	Route(ctx context.Context, origin, dest types.Point) (Route, error)
}
