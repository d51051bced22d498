// README: OSRM turn-by-turn routing adapter.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wayfind/internal/types"
)

const defaultOSRMURL = "https://router.project-osrm.org"

// OSRMService implements DirectionsProvider against an OSRM HTTP server.
type OSRMService struct {
	client  *http.Client
	baseURL string
}

func NewOSRMService(baseURL string) *OSRMService {
	if baseURL == "" {
		baseURL = defaultOSRMURL
	}
	return &OSRMService{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
	}
}

type osrmManeuver struct {
	Type        string `json:"type"`
	Instruction string `json:"instruction"`
	Modifier    string `json:"modifier"`
}

type osrmStep struct {
	Name     string       `json:"name"`
	Distance float64      `json:"distance"` // metres
	Duration float64      `json:"duration"` // seconds
	Maneuver osrmManeuver `json:"maneuver"`
}

type osrmLeg struct {
	Steps []osrmStep `json:"steps"`
}

type osrmRoute struct {
	Distance float64   `json:"distance"`
	Duration float64   `json:"duration"`
	Legs     []osrmLeg `json:"legs"`
}

type osrmResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

func (s *OSRMService) Route(ctx context.Context, origin, dest types.Point) (Route, error) {
	// OSRM wants lng,lat pairs.
	u := fmt.Sprintf("%s/route/v1/driving/%v,%v;%v,%v?overview=false&steps=true&geometries=geojson",
		s.baseURL, origin.Lng, origin.Lat, dest.Lng, dest.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Route{}, fmt.Errorf("osrm request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Route{}, fmt.Errorf("osrm route: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Route{}, fmt.Errorf("osrm route: unexpected status %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Route{}, fmt.Errorf("osrm response: %w", err)
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return Route{}, ErrNoRoute
	}

	raw := body.Routes[0]
	route := Route{
		DistanceKm:  raw.Distance / 1000,
		DurationSec: raw.Duration,
	}
	for _, leg := range raw.Legs {
		for _, step := range leg.Steps {
			instruction := step.Maneuver.Instruction
			if instruction == "" {
				instruction = describeManeuver(step.Maneuver, step.Name)
			}
			route.Steps = append(route.Steps, RouteStep{
				Instruction: instruction,
				DistanceKm:  step.Distance / 1000,
				DurationSec: step.Duration,
				Maneuver:    step.Maneuver.Type,
			})
		}
	}
	return route, nil
}

// describeManeuver builds a readable instruction when the server supplies
// none (the public OSRM demo server omits instruction text).
func describeManeuver(m osrmManeuver, road string) string {
	var text string
	switch m.Type {
	case "depart":
		text = "Head out"
	case "arrive":
		return "Arrive at destination"
	case "turn":
		text = "Turn " + m.Modifier
	case "roundabout":
		text = "Take the roundabout"
	case "merge":
		text = "Merge " + m.Modifier
	case "on ramp":
		text = "Take the ramp"
	case "off ramp":
		text = "Exit the ramp"
	case "fork":
		text = "Keep " + m.Modifier + " at the fork"
	default:
		text = "Continue straight"
	}
	if road != "" {
		text += " onto " + road
	}
	return text
}
