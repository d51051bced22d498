// README: Navigation service: fetches directions and loads them into a session.
package navigation

import (
	"context"
	"errors"
	"fmt"

	"wayfind/internal/maps"
	"wayfind/internal/types"
)

// ErrDirectionsUnavailable wraps any provider failure; the session is left
// untouched so the caller can keep showing the straight-line fallback.
var ErrDirectionsUnavailable = errors.New("navigation: directions unavailable")

// Directions is the routing port the service drives. Implementations live
// in internal/maps.
type Directions interface {
	Route(ctx context.Context, origin, dest types.Point) (maps.Route, error)
}

// Service fetches a driving route and prepares a session for it.
type Service struct {
	directions Directions
}

func NewService(directions Directions) *Service {
	return &Service{directions: directions}
}

// Prepare fetches directions between the two points and loads them into
// the session. On provider failure the session keeps its previous state.
func (s *Service) Prepare(ctx context.Context, session *Session, origin, dest types.Point) (maps.Route, error) {
	route, err := s.directions.Route(ctx, origin, dest)
	if err != nil {
		return maps.Route{}, fmt.Errorf("%w: %v", ErrDirectionsUnavailable, err)
	}
	session.Load(route)
	return route, nil
}
