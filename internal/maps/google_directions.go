// README: Google Directions routing adapter (alternative to OSRM).
package maps

import (
	"context"
	"fmt"
	"regexp"

	gmaps "googlemaps.github.io/maps"

	"wayfind/internal/types"
)

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// GoogleDirectionsService implements DirectionsProvider using the Google
// Directions API in driving mode.
type GoogleDirectionsService struct {
	client *gmaps.Client
	region string
}

func NewGoogleDirectionsService(apiKey, region string) (*GoogleDirectionsService, error) {
	client, err := gmaps.NewClient(gmaps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &GoogleDirectionsService{client: client, region: region}, nil
}

func (s *GoogleDirectionsService) Route(ctx context.Context, origin, dest types.Point) (Route, error) {
	r := &gmaps.DirectionsRequest{
		Origin:      fmt.Sprintf("%v,%v", origin.Lat, origin.Lng),
		Destination: fmt.Sprintf("%v,%v", dest.Lat, dest.Lng),
		Mode:        gmaps.TravelModeDriving,
		Language:    "en",
		Region:      s.region,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return Route{}, fmt.Errorf("directions api: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return Route{}, ErrNoRoute
	}
	return googleRoute(routes[0].Legs), nil
}

// googleRoute flattens the legs of a Google route into the provider-neutral
// shape. The API carries no maneuver code, only HTML instruction text, so
// Maneuver stays empty.
func googleRoute(legs []*gmaps.Leg) Route {
	var route Route
	for _, leg := range legs {
		route.DistanceKm += float64(leg.Distance.Meters) / 1000
		route.DurationSec += leg.Duration.Seconds()
		for _, step := range leg.Steps {
			route.Steps = append(route.Steps, RouteStep{
				Instruction: htmlTagRe.ReplaceAllString(step.HTMLInstructions, ""),
				DistanceKm:  float64(step.Distance.Meters) / 1000,
				DurationSec: step.Duration.Seconds(),
			})
		}
	}
	return route
}
